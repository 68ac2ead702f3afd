// Package services wires the fetcher and loader into the fetch → load run
// used by the CLI. It owns the cross-cutting concerns the core leaves out:
// configuration validation, overwrite approval, and retries of transient
// fetch failures.
package services
