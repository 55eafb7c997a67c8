package domain

import (
	"time"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	IntentAdd   = "add"
	IntentOther = "other"
)

var (
	MessageSuccessChat          = "message processed"
	MessageSuccessGetTranscript = "chat transcript retrieved successfully"
	MessageSuccessResetChat     = "chat transcript cleared"

	MessageFailedChat = "failed to process chat message"
)

type (
	ChatMessage struct {
		Role    string    `json:"role"`
		Content string    `json:"content"`
		SentAt  time.Time `json:"sent_at"`
	}

	ChatIntent struct {
		Intent string `json:"intent" validate:"required,oneof=add other"`
		Item   string `json:"item" validate:"required_if=Intent add"`
		Reply  string `json:"reply"`
	}

	ChatRequest struct {
		Message string `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Reply   string             `json:"reply"`
		Added   *CartLine          `json:"added,omitempty"`
		Pending *PendingSuggestion `json:"pending_suggestion,omitempty"`
	}
)
