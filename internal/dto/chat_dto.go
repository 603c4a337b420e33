package dto

import (
	"time"

	"psybot-be/pkg/store"
	"psybot-be/pkg/upstream"
)

// ChatRequest is the raw proxy request body. Every field except Message is
// optional on the wire; defaulting happens in one place in the service.
type ChatRequest struct {
	Provider string                 `json:"provider"`
	Message  string                 `json:"message"`
	Model    string                 `json:"model"`
	Language string                 `json:"language"`
	UserId   string                 `json:"userId"`
	History  []store.Turn           `json:"history"`
	Params   map[string]interface{} `json:"params"`
}

type ChatResponse struct {
	Reply     string              `json:"reply"`
	Citations []upstream.Citation `json:"citations,omitempty"`
}

type ChatRecordResponse struct {
	Message   string              `json:"message"`
	Reply     string              `json:"reply"`
	Model     string              `json:"model"`
	Language  string              `json:"language"`
	Citations []upstream.Citation `json:"citations"`
	Timestamp time.Time           `json:"timestamp"`
}
