// Package textutil normalizes raw file bytes before identifier scanning and
// report persistence.
package textutil

import "bytes"

// NormalizeLF converts CRLF and lone CR line endings to LF and replaces
// invalid UTF-8 byte sequences with the Unicode replacement character, so
// the identifier regex only ever sees clean LF-separated text.
func NormalizeLF(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	b = bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
	return bytes.ToValidUTF8(b, []byte("�"))
}

// EnsureTrailingLF appends a single '\n' if not already present.
func EnsureTrailingLF(b []byte) []byte {
	if len(b) == 0 || b[len(b)-1] == '\n' {
		return b
	}
	return append(b, '\n')
}
