package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiTranslator is the Gemini-backed alternative to OpenAITranslator.
type GeminiTranslator struct {
	apiKey string
	model  string
}

// NewGeminiTranslator creates a new Gemini-backed translator
func NewGeminiTranslator(apiKey, model string) *GeminiTranslator {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiTranslator{apiKey: apiKey, model: model}
}

// Translate returns the Chinese gloss for word
func (t *GeminiTranslator) Translate(ctx context.Context, word string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  t.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := fmt.Sprintf("Translate the English word '%s' into a short Chinese gloss for a vocabulary list, "+
		"with senses separated by '；' (for example: 放弃；抛弃). Respond with only the Chinese, nothing else.", word)

	resp, err := client.Models.GenerateContent(ctx, t.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translation, nil
}
