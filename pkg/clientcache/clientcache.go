// Package clientcache is the device-local mirror of a user's chat sessions.
// It backs the web client: sessions are kept newest-first per user email,
// titles derive from the first user message, and a daily usage ceiling is
// enforced before a new session may start.
package clientcache

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"psybot-be/pkg/upstream"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"

	// DailyLimit is the per-user ceiling in quota units. One sent message
	// counts as one unit, standing in for roughly a minute of usage.
	DailyLimit = 30

	titleMaxLen = 40
)

var ErrDailyLimit = errors.New("daily limit reached")

// connectionErrors mirror the client translations for upstream failures.
var connectionErrors = map[string]string{
	"fr": "Erreur de connexion.",
	"en": "Connection error.",
	"ar": "خطأ في الاتصال.",
}

// ChatTurn is one rendered exchange unit. Citations only appear on bot
// turns answered by the retrieval provider.
type ChatTurn struct {
	Message   string              `json:"message"`
	Sender    string              `json:"sender"`
	Citations []upstream.Citation `json:"citations,omitempty"`
}

type ChatSession struct {
	Id        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"startTime"`
	History   []ChatTurn `json:"history"`
}

// Store persists per-user session lists to a single JSON file, standing in
// for the browser's local storage. All methods are safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	path     string
	sessions map[string][]*ChatSession // keyed by user email, newest first
}

func NewStore(path string) *Store {
	s := &Store{
		path:     path,
		sessions: make(map[string][]*ChatSession),
	}
	s.load()
	return s
}

// load reads the backing file. A missing or corrupt file means no prior
// sessions; it never fails the caller.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var parsed map[string][]*ChatSession
	if err := json.Unmarshal(data, &parsed); err != nil {
		return
	}
	s.sessions = parsed
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// UsedToday sums the message counts of every session started since the
// local midnight preceding now.
func (s *Store) UsedToday(email string, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usedTodayLocked(email, now)
}

func (s *Store) usedTodayLocked(email string, now time.Time) int {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	total := 0
	for _, session := range s.sessions[email] {
		if session.StartTime.Before(startOfDay) {
			continue
		}
		total += len(session.History)
	}
	return total
}

// StartSession creates an empty untitled session at the head of the user's
// list. It refuses with ErrDailyLimit once today's usage reaches the
// ceiling; sending within an existing session is never blocked.
func (s *Store) StartSession(email, id string, now time.Time) (*ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usedTodayLocked(email, now) >= DailyLimit {
		return nil, ErrDailyLimit
	}

	session := &ChatSession{
		Id:        id,
		Title:     "",
		StartTime: now,
		History:   []ChatTurn{},
	}
	s.sessions[email] = append([]*ChatSession{session}, s.sessions[email]...)

	if err := s.persist(); err != nil {
		return nil, err
	}
	return session, nil
}

// AppendUserMessage records a user turn and derives the session title from
// the first user message. A title, once set, is never overwritten.
func (s *Store) AppendUserMessage(email, sessionId, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.findLocked(email, sessionId)
	if session == nil {
		return errors.New("session not found")
	}

	session.History = append(session.History, ChatTurn{Message: message, Sender: SenderUser})
	if session.Title == "" {
		session.Title = DeriveTitle(message)
	}
	return s.persist()
}

// AppendBotReply records the assistant's answer, with citations when the
// retrieval provider supplied them.
func (s *Store) AppendBotReply(email, sessionId, reply string, citations []upstream.Citation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.findLocked(email, sessionId)
	if session == nil {
		return errors.New("session not found")
	}

	session.History = append(session.History, ChatTurn{
		Message:   reply,
		Sender:    SenderBot,
		Citations: citations,
	})
	return s.persist()
}

// AppendConnectionError records a bot turn carrying the localized
// connection failure notice, keeping the conversation usable.
func (s *Store) AppendConnectionError(email, sessionId, language string) error {
	notice, ok := connectionErrors[language]
	if !ok {
		notice = connectionErrors["fr"]
	}
	return s.AppendBotReply(email, sessionId, notice, nil)
}

// Sessions returns the user's sessions, newest first.
func (s *Store) Sessions(email string) []*ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*ChatSession, len(s.sessions[email]))
	copy(out, s.sessions[email])
	return out
}

func (s *Store) findLocked(email, sessionId string) *ChatSession {
	for _, session := range s.sessions[email] {
		if session.Id == sessionId {
			return session
		}
	}
	return nil
}

// DeriveTitle shortens the first user message into a session title:
// everything past 40 characters is replaced with an ellipsis.
func DeriveTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= titleMaxLen {
		return message
	}
	return string(runes[:titleMaxLen]) + "..."
}
