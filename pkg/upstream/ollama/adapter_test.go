package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"psybot-be/internal/constant"
	"psybot-be/pkg/store"
	"psybot-be/pkg/upstream"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessages(t *testing.T) {
	tests := []struct {
		name       string
		req        *upstream.Request
		wantSystem string
		wantRoles  []string
	}{
		{
			name:       "french prompt with history",
			req:        &upstream.Request{Message: "bonjour", Language: "fr", History: []store.Turn{{Role: "user", Content: "salut"}, {Role: "model", Content: "salut !"}}},
			wantSystem: constant.SystemPrompts["fr"],
			wantRoles:  []string{"system", "user", "assistant", "user"},
		},
		{
			name:       "unknown language degrades to empty prompt",
			req:        &upstream.Request{Message: "hi", Language: "de"},
			wantSystem: "",
			wantRoles:  []string{"system", "user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := buildMessages(tt.req)

			assert.Equal(t, tt.wantSystem, messages[0].Content)
			roles := make([]string, 0, len(messages))
			for _, m := range messages {
				roles = append(roles, m.Role)
			}
			assert.Equal(t, tt.wantRoles, roles)
			assert.Equal(t, tt.req.Message, messages[len(messages)-1].Content)
		})
	}
}

func TestHandleParsesFirstChoice(t *testing.T) {
	var received chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Je vous écoute."}},
			},
		})
	}))
	defer srv.Close()

	reply, err := NewAdapter(srv.URL).Handle(context.Background(), &upstream.Request{
		Message:  "bonjour",
		Language: "fr",
		Model:    "gemma3:1b",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Je vous écoute.", reply.Text)
	assert.Nil(t, reply.Citations)
	assert.Equal(t, "gemma3:1b", received.Model)
}

func TestHandleMissingContentUsesPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []map[string]interface{}{}})
	}))
	defer srv.Close()

	reply, err := NewAdapter(srv.URL).Handle(context.Background(), &upstream.Request{Message: "bonjour"})

	assert.NoError(t, err)
	assert.Equal(t, constant.NoAnswerOllama, reply.Text)
}

func TestHandleNonOKStatusIsTaggedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewAdapter(srv.URL).Handle(context.Background(), &upstream.Request{Message: "bonjour"})

	var ue *upstream.Error
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, constant.ErrTagOllama, ue.Tag)
}
