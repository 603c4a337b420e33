package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"psybot-be/pkg/store"
)

// ConversationRepository keeps per-user conversation state for the proxy.
// Entries expire after a day of inactivity so the map stays bounded; losing
// one only loses in-memory context, the durable record lives in the chats
// table.
type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &ConversationRepository{
		cache: c,
	}
}

// GetOrCreate returns the conversation for the key, lazily creating it on
// first use, and touches LastActivity.
func (r *ConversationRepository) GetOrCreate(key string, now time.Time) *store.Conversation {
	if x, found := r.cache.Get(key); found {
		conv := x.(*store.Conversation)
		conv.LastActivity = now
		r.cache.Set(key, conv, cache.DefaultExpiration)
		return conv
	}
	conv := &store.Conversation{
		Key:          key,
		Context:      []store.Turn{},
		StartTime:    now,
		LastActivity: now,
	}
	r.cache.Set(key, conv, cache.DefaultExpiration)
	return conv
}

func (r *ConversationRepository) Save(conv *store.Conversation) {
	r.cache.Set(conv.Key, conv, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(key string) (*store.Conversation, bool) {
	if x, found := r.cache.Get(key); found {
		return x.(*store.Conversation), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(key string) {
	r.cache.Delete(key)
}
