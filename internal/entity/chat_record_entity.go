package entity

import (
	"time"

	"github.com/google/uuid"

	"psybot-be/pkg/upstream"
)

// ChatRecord is one durable row per proxied exchange. Append-only.
type ChatRecord struct {
	Id        uuid.UUID
	Message   string
	Reply     string
	Model     string
	Language  string
	Citations []upstream.Citation
	Timestamp time.Time
}
