package entity

import (
	"time"

	"github.com/google/uuid"

	"psybot-be/pkg/upstream"
)

// ChatMessage is one question/reply pair inside a session. The row is created
// with an empty reply when the user sends, then patched once the upstream
// call completes.
type ChatMessage struct {
	Id            uuid.UUID
	Email         string
	Question      string
	Reply         string
	Citations     []upstream.Citation
	ChatSessionId uuid.UUID
	Timestamp     time.Time
}
