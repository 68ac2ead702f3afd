// Package checksum provides content hashing for fetched datasets.
//
// Two checksums are offered:
//
//   - Raw checksum: Hash of the exact bytes (detects all changes)
//   - Normalized checksum: Hash after normalizing line endings and trailing
//     whitespace, so the same dataset served with CRLF or LF line endings
//     hashes identically
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(body)
//	normalized := calculator.CalculateNormalized(body)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
