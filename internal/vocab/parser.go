package vocab

import (
	"errors"
	"strings"
)

// minRawLines is the sanity floor for a vocabulary buffer. A real list is
// never this short, so fewer lines means a corrupt or truncated resource.
const minRawLines = 10

var (
	// ErrResourceUnavailable means the provider could not supply a buffer.
	ErrResourceUnavailable = errors.New("vocabulary resource unavailable")

	// ErrInsufficientData means the buffer had fewer than 10 raw lines.
	ErrInsufficientData = errors.New("vocabulary data has fewer than 10 lines")

	// ErrNoUsableEntries means no row survived per-row filtering.
	ErrNoUsableEntries = errors.New("vocabulary data contains no usable entries")
)

// Entry is one vocabulary word. All fields are present after a successful
// parse; missing trailing columns become empty strings, never absent.
type Entry struct {
	Name        string
	PhoneticUK  string
	PhoneticUS  string
	Translation string
}

// ParseTSV parses a UTF-8 vocabulary buffer into entries in source order.
//
// Each line holds up to 4 tab-separated fields: name, UK phonetic, US
// phonetic, translation. Fields are trimmed; rows whose name trims to empty
// are dropped silently. Row-level damage is tolerated, but a buffer with
// fewer than 10 raw lines or zero surviving rows fails outright.
func ParseTSV(data []byte) ([]Entry, error) {
	lines := strings.Split(string(data), "\n")
	// A trailing newline produces one empty trailing element, not a line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) < minRawLines {
		return nil, ErrInsufficientData
	}

	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		fields := strings.SplitN(line, "\t", 4)
		for i, f := range fields {
			fields[i] = strings.Trim(f, " \t\r\n")
		}
		if fields[0] == "" {
			continue
		}
		e := Entry{Name: fields[0]}
		if len(fields) > 1 {
			e.PhoneticUK = fields[1]
		}
		if len(fields) > 2 {
			e.PhoneticUS = fields[2]
		}
		if len(fields) > 3 {
			e.Translation = fields[3]
		}
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, ErrNoUsableEntries
	}
	return entries, nil
}
