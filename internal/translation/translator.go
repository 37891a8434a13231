package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// Translator produces a short Chinese gloss for an English word, in the
// vocabulary-list style (senses separated by "；").
type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

// OpenAITranslator translates via the OpenAI chat API. A circuit breaker
// stops a batch enrichment run from hammering a failing API.
type OpenAITranslator struct {
	apiKey  string
	model   string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAITranslator creates a new OpenAI-backed translator
func NewOpenAITranslator(apiKey, model string) *OpenAITranslator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranslator{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-translate",
			Timeout: 30 * time.Second,
		}),
	}
}

// Translate returns the Chinese gloss for word
func (t *OpenAITranslator) Translate(ctx context.Context, word string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	result, err := t.breaker.Execute(func() (interface{}, error) {
		req := openai.ChatCompletionRequest{
			Model: t.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					Content: fmt.Sprintf("Translate the English word '%s' into a short Chinese gloss for a vocabulary list, "+
						"with senses separated by '；' (for example: 放弃；抛弃). Respond with only the Chinese, nothing else.", word),
				},
			},
			MaxTokens:   50,
			Temperature: 0.3,
		}

		resp, err := t.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no translation returned")
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Cache stores translations in memory for batch enrichment runs
type Cache struct {
	translations map[string]string
}

// NewCache creates a new translation cache
func NewCache() *Cache {
	return &Cache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (c *Cache) Add(word, translation string) {
	c.translations[word] = translation
}

// Get retrieves a translation from the cache
func (c *Cache) Get(word string) (string, bool) {
	translation, ok := c.translations[word]
	return translation, ok
}
