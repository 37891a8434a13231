// Package history records which vocabulary words the clock has displayed,
// in a small SQLite database, so learners can review what scrolled past.
package history
