// Package processor wires the command-line flags to the word store and the
// supporting components. It drives printing, validation, vocabulary
// enrichment, the history report, and the GUI clock. This package serves as
// the main coordinator between all other components.
package processor
