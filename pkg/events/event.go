package events

import (
	"time"

	"psybot-be/pkg/upstream"
)

const ChatRecordedType = "CHAT_EXCHANGE_RECORDED"

// ChatRecorded is published after each successful proxied exchange. The
// consumer turns one of these into a durable chats row.
type ChatRecorded struct {
	Message   string              `json:"message"`
	Reply     string              `json:"reply"`
	Model     string              `json:"model"`
	Language  string              `json:"language"`
	Citations []upstream.Citation `json:"citations"`
	Timestamp time.Time           `json:"timestamp"`
}
