package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"psybot-be/internal/constant"
	"psybot-be/pkg/upstream"
)

// Adapter talks to an OpenAI-compatible chat-completion endpoint (Ollama's
// /v1 surface in the default deployment).
type Adapter struct {
	BaseURL string
	Client  *http.Client
}

var _ upstream.Adapter = &Adapter{}

func NewAdapter(baseURL string) *Adapter {
	return &Adapter{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: constant.UpstreamTimeout,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// buildMessages assembles the completion input: one system message selected
// by language, the full role-tagged history, then the new user message.
func buildMessages(req *upstream.Request) []chatMessage {
	system := constant.SystemPrompts[req.Language]

	messages := make([]chatMessage, 0, len(req.History)+2)
	messages = append(messages, chatMessage{Role: constant.ChatMessageRoleSystem, Content: system})
	for _, turn := range req.History {
		role := turn.Role
		if role == "model" {
			role = constant.ChatMessageRoleAssistant
		}
		messages = append(messages, chatMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: constant.ChatMessageRoleUser, Content: req.Message})

	return messages
}

func (a *Adapter) Handle(ctx context.Context, req *upstream.Request) (*upstream.Reply, error) {
	payloadBytes, err := json.Marshal(chatRequest{
		Model:    req.Model,
		Messages: buildMessages(req),
	})
	if err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagOllama, Err: fmt.Errorf("marshal request: %w", err)}
	}

	url := a.BaseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagOllama, Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(httpReq)
	if err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagOllama, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagOllama, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &upstream.Error{
			Tag: constant.ErrTagOllama,
			Err: fmt.Errorf("status %d, body: %s", resp.StatusCode, string(bodyBytes)),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, &upstream.Error{Tag: constant.ErrTagOllama, Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	reply := constant.NoAnswerOllama
	if len(chatResp.Choices) > 0 && chatResp.Choices[0].Message.Content != "" {
		reply = chatResp.Choices[0].Message.Content
	}

	return &upstream.Reply{Text: reply, Citations: nil}, nil
}

// WithTimeout overrides the default client timeout, mainly for tests.
func (a *Adapter) WithTimeout(d time.Duration) *Adapter {
	a.Client.Timeout = d
	return a
}
