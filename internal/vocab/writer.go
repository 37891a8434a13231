package vocab

import (
	"fmt"
	"os"
	"strings"
)

// FormatTSV renders entries back into the on-disk TSV format, one entry per
// line, trailing newline included.
func FormatTSV(entries []Entry) []byte {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Name)
		b.WriteByte('\t')
		b.WriteString(e.PhoneticUK)
		b.WriteByte('\t')
		b.WriteString(e.PhoneticUS)
		b.WriteByte('\t')
		b.WriteString(e.Translation)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// WriteTSV writes entries to path atomically (write to a temp file in the
// same directory, then rename).
func WriteTSV(path string, entries []Entry) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, FormatTSV(entries), 0644); err != nil {
		return fmt.Errorf("failed to write vocabulary file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace vocabulary file: %w", err)
	}
	return nil
}
