// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleRows are well-formed vocabulary rows usable as test data.
var SampleRows = []string{
	"abandon\təˈbændən\təˈbændən\t放弃；抛弃",
	"ability\təˈbɪləti\təˈbɪləti\t能力；才能",
	"abroad\təˈbrɔːd\təˈbrɔːd\t在国外；到国外",
}

// VocabBuffer builds a parseable TSV buffer from rows, padded with
// blank-name filler lines to clear the parser's 10-line floor.
func VocabBuffer(rows ...string) []byte {
	lines := append([]string{}, rows...)
	for len(lines) < 10 {
		lines = append(lines, "\tpad")
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// CreateVocabFile writes a padded vocabulary file into a temp directory and
// returns its path.
func CreateVocabFile(t *testing.T, rows ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.tsv")
	if err := os.WriteFile(path, VocabBuffer(rows...), 0644); err != nil {
		t.Fatalf("Failed to create vocabulary file %s: %v", path, err)
	}
	return path
}
