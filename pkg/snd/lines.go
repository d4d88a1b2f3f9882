package snd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadLines decodes an SND byte stream into trimmed text lines. Decoding
// is permissive: invalid UTF-8 sequences are dropped rather than failing
// the read, since field equipment regularly emits stray bytes. An error
// is returned only when the underlying read itself fails.
func ReadLines(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snd input: %w", err)
	}

	text := strings.ToValidUTF8(string(b), "")
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines, nil
}

// BoreholeIDFromPath derives the borehole identifier from a file path:
// the base name up to the first dot.
func BoreholeIDFromPath(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}
