package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService talks to Gemini through the generative-ai-go SDK. The client
// is created once and shared by all requests.
type GeminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	topP        float32
}

func NewGeminiService(ctx context.Context, opts GeneratorOptions) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:      client,
		modelName:   opts.Model,
		temperature: opts.Temperature,
		topP:        opts.TopP,
	}, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

// Generate runs one GenerateContent call with systemInstruction as the
// persona and prompt as the only user content.
func (s *GeminiService) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	// Model handles carry per-call settings, so each request gets its own.
	model := s.client.GenerativeModel(s.modelName)
	model.SetTemperature(s.temperature)
	model.SetTopP(s.topP)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Err: err}
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	return extractText(resp), nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
