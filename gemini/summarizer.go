// Package gemini implements webscrape.Summarizer using Google Gemini.
package gemini

import (
	"context"
	"errors"

	"github.com/fwojciec/webscrape"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements webscrape.Summarizer at compile time.
var _ webscrape.Summarizer = (*Summarizer)(nil)

// Summarizer implements webscrape.Summarizer using Google Gemini.
type Summarizer struct {
	client       *genai.Client
	model        string
	systemPrompt string
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel and an empty systemPrompt selects webscrape.DefaultSystemPrompt.
func NewSummarizer(client *genai.Client, model, systemPrompt string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	if systemPrompt == "" {
		systemPrompt = webscrape.DefaultSystemPrompt
	}
	return &Summarizer{client: client, model: model, systemPrompt: systemPrompt}
}

// Summarize answers prompt about content.
func (s *Summarizer) Summarize(ctx context.Context, prompt, content string) (string, error) {
	if prompt == "" {
		return "", webscrape.Errorf(webscrape.EINVALID, "prompt required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserMessage(prompt, content)}},
		}},
		BuildConfig(s.systemPrompt),
	)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", webscrape.Errorf(webscrape.ESUMMARIZE, "Gemini API error %d: %s", apiErr.Code, apiErr.Message)
		}
		return "", webscrape.Errorf(webscrape.ESUMMARIZE, "error calling Gemini API: %v", err)
	}
	if result == nil {
		return "", webscrape.Errorf(webscrape.ESUMMARIZE, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(systemPrompt string) *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature: &temp,
	}
}

// BuildUserMessage combines the caller's prompt with the content to analyze.
func BuildUserMessage(prompt, content string) string {
	return prompt + "\n\nContent to analyze:\n" + content
}
