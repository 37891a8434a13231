package vocab

import (
	"errors"
	"strings"
	"testing"
)

// padLines appends enough blank-name filler lines to pass the 10-line floor
// without contributing entries.
func padLines(rows ...string) string {
	lines := append([]string{}, rows...)
	for len(lines) < 10 {
		lines = append(lines, "\tfiller")
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestParseTSV_InsufficientData(t *testing.T) {
	nine := strings.Repeat("word\tuk\tus\ttrans\n", 9)

	_, err := ParseTSV([]byte(nine))
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData for 9 lines, got: %v", err)
	}

	ten := strings.Repeat("word\tuk\tus\ttrans\n", 10)
	entries, err := ParseTSV([]byte(ten))
	if err != nil {
		t.Fatalf("ParseTSV failed for 10 lines: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("Expected 10 entries, got %d", len(entries))
	}
}

func TestParseTSV_NoUsableEntries(t *testing.T) {
	// Every row has an empty name after trimming.
	rows := strings.Repeat("  \tuk\tus\ttrans\n", 12)

	_, err := ParseTSV([]byte(rows))
	if !errors.Is(err, ErrNoUsableEntries) {
		t.Errorf("Expected ErrNoUsableEntries, got: %v", err)
	}
}

func TestParseTSV_SkipsBlankNameRows(t *testing.T) {
	data := padLines(
		"cat\tkæt\tkæt\t猫",
		"\tuk-only\tus-only\torphan",
		"dog\tdɒɡ\tdɔːɡ\t狗",
	)

	entries, err := ParseTSV([]byte(data))
	if err != nil {
		t.Fatalf("ParseTSV failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "cat" || entries[1].Name != "dog" {
		t.Errorf("Entries out of order: %q, %q", entries[0].Name, entries[1].Name)
	}
}

func TestParseTSV_NameOnlyRow(t *testing.T) {
	entries, err := ParseTSV([]byte(padLines("cat")))
	if err != nil {
		t.Fatalf("ParseTSV failed: %v", err)
	}

	e := entries[0]
	if e.Name != "cat" {
		t.Errorf("Name = %q, want %q", e.Name, "cat")
	}
	if e.PhoneticUK != "" || e.PhoneticUS != "" || e.Translation != "" {
		t.Errorf("Missing fields should default to empty, got %+v", e)
	}
}

func TestParseTSV_TrimsFields(t *testing.T) {
	entries, err := ParseTSV([]byte(padLines("  cat \t kæt \t kæt\r\t 猫 ")))
	if err != nil {
		t.Fatalf("ParseTSV failed: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Name", entries[0].Name, "cat"},
		{"PhoneticUK", entries[0].PhoneticUK, "kæt"},
		{"PhoneticUS", entries[0].PhoneticUS, "kæt"},
		{"Translation", entries[0].Translation, "猫"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestParseTSV_PreservesSourceOrder(t *testing.T) {
	rows := []string{}
	want := []string{"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliet"}
	for _, w := range want {
		rows = append(rows, w+"\tuk\tus\ttrans")
	}

	entries, err := ParseTSV([]byte(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("ParseTSV failed: %v", err)
	}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Name != w {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, w)
		}
	}
}

func TestParseTSV_ExtraTabsStayInTranslation(t *testing.T) {
	// Only the first three tabs split; anything after belongs to the
	// translation column.
	entries, err := ParseTSV([]byte(padLines("cat\tuk\tus\t猫\t科")))
	if err != nil {
		t.Fatalf("ParseTSV failed: %v", err)
	}
	if entries[0].Translation != "猫\t科" {
		t.Errorf("Translation = %q, want %q", entries[0].Translation, "猫\t科")
	}
}
