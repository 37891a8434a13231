package phonetic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// Transcription holds the two IPA variants of a word, without brackets or
// slashes.
type Transcription struct {
	UK string
	US string
}

// Fetcher retrieves IPA transcriptions via the OpenAI chat API.
type Fetcher struct {
	apiKey  string
	model   string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewFetcher creates a new phonetic transcription fetcher
func NewFetcher(apiKey, model string) *Fetcher {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Fetcher{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-phonetic",
			Timeout: 30 * time.Second,
		}),
	}
}

// Fetch returns the UK and US IPA transcriptions for word
func (f *Fetcher) Fetch(ctx context.Context, word string) (Transcription, error) {
	if f.apiKey == "" {
		return Transcription{}, fmt.Errorf("OpenAI API key not configured")
	}

	result, err := f.breaker.Execute(func() (interface{}, error) {
		req := openai.ChatCompletionRequest{
			Model: f.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleSystem,
					Content: "You are an English pronunciation dictionary. Respond with IPA transcriptions only, " +
						"without brackets or slashes, exactly in the format:\nUK: <ipa>\nUS: <ipa>",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf("Give the received-pronunciation and general-American IPA for the English word '%s'.", word),
				},
			},
			MaxTokens:   60,
			Temperature: 0,
		}

		resp, err := f.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return nil, fmt.Errorf("no transcription returned")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return Transcription{}, err
	}

	tr := parseTranscription(result.(string))
	if tr.UK == "" && tr.US == "" {
		return Transcription{}, fmt.Errorf("unparseable transcription response")
	}
	return tr, nil
}

// parseTranscription extracts the UK/US lines from a model response and
// strips any decoration the model added despite the instructions.
func parseTranscription(s string) Transcription {
	var tr Transcription
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case len(line) > 3 && strings.EqualFold(line[:3], "UK:"):
			tr.UK = cleanIPA(line[3:])
		case len(line) > 3 && strings.EqualFold(line[:3], "US:"):
			tr.US = cleanIPA(line[3:])
		}
	}
	return tr
}

func cleanIPA(s string) string {
	return strings.Trim(strings.TrimSpace(s), "/[]")
}
