package hmrag

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"psybot-be/internal/constant"
	"psybot-be/pkg/store"
	"psybot-be/pkg/upstream"

	"github.com/stretchr/testify/assert"
)

func TestHandleNormalizesAnswerAndCitations(t *testing.T) {
	var received chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"answer": "Bonjour, comment puis-je vous aider ?",
			"citations": []map[string]interface{}{
				{"score": 0.9, "snippet": "extrait"},
			},
		})
	}))
	defer srv.Close()

	adapter := NewAdapter(srv.URL)
	reply, err := adapter.Handle(context.Background(), &upstream.Request{
		Message: "bonjour",
		History: []store.Turn{{Role: "user", Content: "salut"}},
		Params:  map[string]interface{}{"k": 3},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bonjour, comment puis-je vous aider ?", reply.Text)
	assert.Equal(t, []upstream.Citation{{Score: 0.9, Snippet: "extrait"}}, reply.Citations)

	assert.Equal(t, "bonjour", received.Message)
	assert.Len(t, received.History, 1)
	assert.Equal(t, float64(3), received.Params["k"])
}

func TestHandleMissingAnswerUsesPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer srv.Close()

	reply, err := NewAdapter(srv.URL).Handle(context.Background(), &upstream.Request{Message: "bonjour"})

	assert.NoError(t, err)
	assert.Equal(t, constant.NoAnswerHMRAG, reply.Text)
	assert.Equal(t, []upstream.Citation{}, reply.Citations)
}

func TestHandleNonOKStatusIsTaggedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewAdapter(srv.URL).Handle(context.Background(), &upstream.Request{Message: "bonjour"})

	var ue *upstream.Error
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, constant.ErrTagHMRAG, ue.Tag)
}

func TestHandleTimeoutIsTaggedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	adapter := NewAdapter(srv.URL).WithTimeout(20 * time.Millisecond)
	_, err := adapter.Handle(context.Background(), &upstream.Request{Message: "bonjour"})

	var ue *upstream.Error
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, constant.ErrTagHMRAG, ue.Tag)
}
