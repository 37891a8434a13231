// Package models lists the OpenAI chat models usable for vocabulary
// enrichment.
package models
