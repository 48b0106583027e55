package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIService talks to Gemini through the unified google.golang.org/genai SDK.
type GenAIService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	topP        float32
}

func NewGenAIService(ctx context.Context, opts GeneratorOptions) (*GenAIService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GenAIService{
		client:      client,
		modelName:   opts.Model,
		temperature: opts.Temperature,
		topP:        opts.TopP,
	}, nil
}

// Close is a no-op; the genai client holds no resources that need releasing.
func (s *GenAIService) Close() error {
	return nil
}

func (s *GenAIService) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	res, err := s.client.Models.GenerateContent(ctx, s.modelName, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(s.temperature),
		TopP:              genai.Ptr(s.topP),
	})
	if err != nil {
		return "", &ProviderError{Err: err}
	}
	if res == nil {
		return "", nil
	}
	return res.Text(), nil
}
