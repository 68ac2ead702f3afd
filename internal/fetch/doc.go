// Package fetch downloads a remote dataset to a local file.
//
// A fetch is one blocking GET. The whole body is buffered and checked to be
// UTF-8 text before anything touches the destination; the bytes are then
// written to a temporary sibling file and renamed over the destination, so an
// interrupted transfer never leaves a truncated file behind.
//
// Failures are returned as *namesetl.FetchError values whose Kind tells a
// transport failure apart from a bad status, an undecodable body, or a write
// failure. Nothing is retried here; see package retry.
package fetch
