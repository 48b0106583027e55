package models

// ChatMessage represents a single prior turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. Mode is nil when the
// field is absent; an explicit value, even "", is echoed back.
type ChatRequest struct {
	Prompt  string        `json:"prompt"`
	Mode    *string       `json:"mode"`
	History []ChatMessage `json:"history"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Response string `json:"response"`
	Mode     string `json:"mode"`
}
