// Package vocab loads and parses the tab-separated vocabulary lists used by
// the word display. It ships an embedded CET-4 list and can read
// user-supplied TSV files in the same format.
package vocab
