package services

import (
	"context"
	"fmt"
)

const (
	SDKGenerativeAI = "generative-ai-go"
	SDKGenAI        = "genai"
)

// GeneratorOptions configures a Gemini-backed Generator.
type GeneratorOptions struct {
	SDK         string
	APIKey      string
	Model       string
	Temperature float32
	TopP        float32
}

// Generator produces text for one prompt under one system instruction.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
	Close() error
}

// NewGenerator builds the Generator for the configured SDK.
func NewGenerator(ctx context.Context, opts GeneratorOptions) (Generator, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is empty")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("Gemini model is empty")
	}

	switch opts.SDK {
	case "", SDKGenerativeAI:
		return NewGeminiService(ctx, opts)
	case SDKGenAI:
		return NewGenAIService(ctx, opts)
	default:
		return nil, fmt.Errorf("unsupported Gemini SDK %q (expected %q or %q)", opts.SDK, SDKGenerativeAI, SDKGenAI)
	}
}
