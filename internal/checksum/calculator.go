package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Calculator fingerprints a fetched body.
type Calculator interface {
	// CalculateRaw hashes the bytes exactly as received.
	CalculateRaw(content []byte) string
	// CalculateNormalized hashes the body after normalizing line endings
	// and trailing whitespace.
	CalculateNormalized(content []byte) string
}

// SHA256 is the only Calculator. The zero value is ready to use.
type SHA256 struct{}

func New() SHA256 { return SHA256{} }

func (SHA256) CalculateRaw(content []byte) string {
	return hexSum(content)
}

func (SHA256) CalculateNormalized(content []byte) string {
	return hexSum(normalize(content))
}

func hexSum(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// normalize maps CRLF and bare CR to LF, trims spaces and tabs at the end of
// each line and drops trailing empty lines. A CSV exported on Windows and
// the same CSV exported elsewhere normalize to identical bytes.
func normalize(content []byte) []byte {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	content = bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))

	out := make([]byte, 0, len(content))
	for i, line := range bytes.Split(content, []byte("\n")) {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, bytes.TrimRight(line, " \t")...)
	}
	return bytes.TrimRight(out, "\n")
}
