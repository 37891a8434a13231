package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListChatModels prints the chat models usable for phonetic and translation
// enrichment, one per line.
func (l *Lister) ListChatModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .catime-words.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		id := model.ID
		// Chat-capable families only; TTS/image/embedding models are of no
		// use for enrichment.
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
			strings.Contains(id, "dall-e") || strings.Contains(id, "embedding") {
			continue
		}
		if strings.Contains(id, "gpt") {
			chatModels = append(chatModels, id)
		}
	}
	sort.Strings(chatModels)

	fmt.Println("Chat models usable for enrichment (--openai-model):")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		fmt.Printf("  %s\n", model)
	}

	return nil
}
