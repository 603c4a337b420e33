package clientcache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"psybot-be/pkg/upstream"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "sessions.json"))
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "short message verbatim", message: "bonjour", want: "bonjour"},
		{name: "exactly forty chars verbatim", message: strings.Repeat("a", 40), want: strings.Repeat("a", 40)},
		{name: "long message truncated", message: strings.Repeat("a", 41), want: strings.Repeat("a", 40) + "..."},
		{name: "empty stays empty", message: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.message))
		})
	}
}

func TestTitleSetOnceFromFirstUserMessage(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	session, err := s.StartSession("alice@example.com", "s1", now)
	assert.NoError(t, err)
	assert.Equal(t, "", session.Title)

	assert.NoError(t, s.AppendUserMessage("alice@example.com", "s1", "je me sens anxieux depuis quelques semaines maintenant"))
	assert.NoError(t, s.AppendUserMessage("alice@example.com", "s1", "autre message"))

	sessions := s.Sessions("alice@example.com")
	assert.Equal(t, "je me sens anxieux depuis quelques semai...", sessions[0].Title)
}

func TestSessionsAreNewestFirst(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	_, err := s.StartSession("alice@example.com", "s1", now)
	assert.NoError(t, err)
	_, err = s.StartSession("alice@example.com", "s2", now.Add(time.Minute))
	assert.NoError(t, err)

	sessions := s.Sessions("alice@example.com")
	assert.Equal(t, "s2", sessions[0].Id)
	assert.Equal(t, "s1", sessions[1].Id)
}

func TestQuotaRefusesNewSessionAtLimit(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	// Three sessions today accumulating exactly the daily limit.
	for i, id := range []string{"s1", "s2", "s3"} {
		_, err := s.StartSession("alice@example.com", id, now.Add(time.Duration(i)*time.Minute))
		assert.NoError(t, err)
		for j := 0; j < 10; j++ {
			assert.NoError(t, s.AppendUserMessage("alice@example.com", id, "message"))
		}
	}
	assert.Equal(t, DailyLimit, s.UsedToday("alice@example.com", now))

	_, err := s.StartSession("alice@example.com", "s4", now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrDailyLimit)

	// A new calendar day resets the count.
	tomorrow := now.AddDate(0, 0, 1)
	_, err = s.StartSession("alice@example.com", "s4", tomorrow)
	assert.NoError(t, err)
}

func TestQuotaNeverBlocksOpenSession(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	_, err := s.StartSession("alice@example.com", "s1", now)
	assert.NoError(t, err)
	for i := 0; i < DailyLimit+5; i++ {
		assert.NoError(t, s.AppendUserMessage("alice@example.com", "s1", "message"))
	}

	assert.Greater(t, s.UsedToday("alice@example.com", now), DailyLimit)
	assert.NoError(t, s.AppendUserMessage("alice@example.com", "s1", "encore un"))
}

func TestQuotaIsPerUser(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	_, err := s.StartSession("alice@example.com", "s1", now)
	assert.NoError(t, err)
	for i := 0; i < DailyLimit; i++ {
		assert.NoError(t, s.AppendUserMessage("alice@example.com", "s1", "message"))
	}

	_, err = s.StartSession("alice@example.com", "s2", now)
	assert.ErrorIs(t, err, ErrDailyLimit)

	_, err = s.StartSession("bob@example.com", "s3", now)
	assert.NoError(t, err)
}

func TestCorruptFileMeansEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path)
	assert.Empty(t, s.Sessions("alice@example.com"))

	// The store stays usable after the bad load.
	_, err := s.StartSession("alice@example.com", "s1", time.Now())
	assert.NoError(t, err)
}

func TestStatePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	now := time.Now()

	s := NewStore(path)
	_, err := s.StartSession("alice@example.com", "s1", now)
	assert.NoError(t, err)
	assert.NoError(t, s.AppendUserMessage("alice@example.com", "s1", "bonjour"))
	assert.NoError(t, s.AppendBotReply("alice@example.com", "s1", "Bonjour !", []upstream.Citation{{Score: 0.9, Snippet: "extrait"}}))

	reloaded := NewStore(path)
	sessions := reloaded.Sessions("alice@example.com")
	assert.Len(t, sessions, 1)
	assert.Equal(t, "bonjour", sessions[0].Title)
	assert.Len(t, sessions[0].History, 2)
	assert.Equal(t, SenderBot, sessions[0].History[1].Sender)
	assert.Len(t, sessions[0].History[1].Citations, 1)
}

func TestConnectionErrorTurnIsLocalized(t *testing.T) {
	s := newTestStore(t)
	_, err := s.StartSession("alice@example.com", "s1", time.Now())
	assert.NoError(t, err)

	assert.NoError(t, s.AppendConnectionError("alice@example.com", "s1", "ar"))
	assert.NoError(t, s.AppendConnectionError("alice@example.com", "s1", "xx"))

	history := s.Sessions("alice@example.com")[0].History
	assert.Equal(t, connectionErrors["ar"], history[0].Message)
	assert.Equal(t, connectionErrors["fr"], history[1].Message)
	assert.Equal(t, SenderBot, history[0].Sender)
}
