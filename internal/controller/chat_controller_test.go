package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"psybot-be/internal/constant"
	"psybot-be/internal/dto"
	"psybot-be/pkg/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeChatService struct {
	resp    *dto.ChatResponse
	err     error
	history []*dto.ChatRecordResponse
}

func (f *fakeChatService) SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeChatService) GetHistory(ctx context.Context) ([]*dto.ChatRecordResponse, error) {
	return f.history, nil
}

func newTestApp(svc *fakeChatService) *fiber.App {
	app := fiber.New()
	NewChatController(svc).RegisterRoutes(app)
	return app
}

func postChat(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestChatReturnsReplyAndCitations(t *testing.T) {
	app := newTestApp(&fakeChatService{resp: &dto.ChatResponse{
		Reply:     "Bonjour, comment puis-je vous aider ?",
		Citations: []upstream.Citation{{Score: 0.9, Snippet: "extrait"}},
	}})

	resp := postChat(t, app, map[string]interface{}{"provider": "hmrag", "message": "bonjour"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ChatResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Bonjour, comment puis-je vous aider ?", body.Reply)
	assert.Len(t, body.Citations, 1)
}

func TestChatOmitsCitationsForGenericProvider(t *testing.T) {
	app := newTestApp(&fakeChatService{resp: &dto.ChatResponse{Reply: "ok"}})

	resp := postChat(t, app, map[string]interface{}{"message": "bonjour"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Contains(t, raw, "reply")
	assert.NotContains(t, raw, "citations")
}

func TestChatUpstreamFailureIs500WithTag(t *testing.T) {
	app := newTestApp(&fakeChatService{err: &upstream.Error{
		Tag: constant.ErrTagHMRAG,
		Err: context.DeadlineExceeded,
	}})

	resp := postChat(t, app, map[string]interface{}{"provider": "hmrag", "message": "bonjour"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, constant.ErrTagHMRAG, body["error"])
}

func TestChatMalformedBodyIs400(t *testing.T) {
	app := newTestApp(&fakeChatService{resp: &dto.ChatResponse{Reply: "ok"}})

	req := httptest.NewRequest("POST", "/chat", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistoryIsIdempotent(t *testing.T) {
	now := time.Now().UTC()
	app := newTestApp(&fakeChatService{history: []*dto.ChatRecordResponse{
		{Message: "bonjour", Reply: "salut", Model: "gemma3:1b", Language: "fr", Timestamp: now},
		{Message: "ça va ?", Reply: "oui", Model: "gemma3:1b", Language: "fr", Timestamp: now.Add(time.Minute)},
	}})

	read := func() []dto.ChatRecordResponse {
		resp, err := app.Test(httptest.NewRequest("GET", "/history", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var records []dto.ChatRecordResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		return records
	}

	first := read()
	second := read()
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
	assert.Equal(t, "bonjour", first[0].Message)
}
