// Package internal holds values shared across the catime-words packages.
package internal

// Version is the catime-words release version
const Version = "1.0.0"
