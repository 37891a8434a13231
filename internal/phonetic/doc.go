// Package phonetic fetches UK and US IPA transcriptions for English
// vocabulary words during enrichment.
package phonetic
