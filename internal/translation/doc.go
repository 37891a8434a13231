// Package translation produces short Chinese glosses for English vocabulary
// words during enrichment, via OpenAI or Gemini.
package translation
