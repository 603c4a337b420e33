package store

import "time"

// Turn is a single message exchange unit inside a conversation.
type Turn struct {
	Role    string `json:"role"` // "user" | "assistant" | "system"
	Content string `json:"content"`
}

// Conversation is the in-memory per-user session state the proxy keeps
// between turns. Durability lives in the chats table, not here; losing these
// on restart is acceptable.
type Conversation struct {
	Key          string    `json:"key"` // user identifier, "default" when absent
	Context      []Turn    `json:"context"`
	StartTime    time.Time `json:"start_time"`
	LastActivity time.Time `json:"last_activity"`
}

// Append adds a turn to the conversation context. Context is append-only.
func (c *Conversation) Append(role, content string) {
	c.Context = append(c.Context, Turn{Role: role, Content: content})
}
