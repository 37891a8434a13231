// Package words cycles through a vocabulary list and renders the formatted
// word suffix shown next to the clock time. It owns one cursor over the
// parsed list, a timer-driven auto-switch, and a length-bounded formatter.
// The store assumes a single calling goroutine (the UI refresh loop) and
// provides no internal locking.
package words
