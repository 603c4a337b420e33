package dto

import (
	"time"

	"github.com/google/uuid"

	"psybot-be/pkg/upstream"
)

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SessionResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

type PostMessageRequest struct {
	Question string `json:"question" validate:"required"`
}

type PatchMessageRequest struct {
	Reply     string              `json:"reply" validate:"required"`
	Citations []upstream.Citation `json:"citations"`
}

type MessageResponse struct {
	Id        uuid.UUID           `json:"id"`
	Question  string              `json:"question"`
	Reply     string              `json:"reply"`
	Citations []upstream.Citation `json:"citations"`
	Timestamp time.Time           `json:"timestamp"`
}
