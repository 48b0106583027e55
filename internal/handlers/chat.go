package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"probsolver-backend/internal/models"
	"probsolver-backend/internal/services"
)

const (
	maxChatBodyBytes = 1 << 20
	fallbackReply    = "Sorry, I could not process your request."
)

type textGenerator interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

type ChatHandler struct {
	personas  *services.Personas
	generator textGenerator
	timeout   time.Duration
}

// NewChatHandler wires the persona table and generator. A zero timeout leaves
// the provider call bounded only by the request context.
func NewChatHandler(personas *services.Personas, generator textGenerator, timeout time.Duration) *ChatHandler {
	return &ChatHandler{
		personas:  personas,
		generator: generator,
		timeout:   timeout,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		// Well-formed JSON with a wrongly typed field is a server-side failure.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	if req.Prompt == "" {
		handleServiceError(w, r, &services.ValidationError{Message: "Prompt is required"})
		return
	}

	mode := services.DefaultMode
	if req.Mode != nil {
		mode = *req.Mode
	}
	if !h.personas.Known(mode) {
		log.Printf("Unknown mode %q, using %s persona", mode, services.DefaultMode)
	}
	instruction := h.personas.Resolve(mode)
	contextPrompt := services.BuildContextPrompt(req.Prompt, req.History)

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	reply, err := h.generator.Generate(ctx, instruction, contextPrompt)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if strings.TrimSpace(reply) == "" {
		reply = fallbackReply
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response: reply,
		Mode:     mode,
	})
}
