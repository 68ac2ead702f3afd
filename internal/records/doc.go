// Package records turns CSV input into typed name records.
//
// Scan reads an io.Reader lazily and yields one Row per CSV record. Rows
// carry their raw fields together with the record number and the line the
// record starts on, so callers can report precise positions. Parse coerces
// a row's fields positionally into a namesetl.NameRecord.
//
// The column order is fixed:
//
//	id, name, total, male_share, female_share, gap
//
// Header detection is not attempted; callers opt into skipping the first
// record with ScanOptions.SkipHeader.
package records
