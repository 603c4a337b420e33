package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"psybot-be/internal/entity"
	"psybot-be/internal/model"
	"psybot-be/pkg/upstream"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func citationsToJSON(citations []upstream.Citation) datatypes.JSON {
	if citations == nil {
		citations = []upstream.Citation{}
	}
	raw, err := json.Marshal(citations)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func citationsFromJSON(raw datatypes.JSON) []upstream.Citation {
	citations := []upstream.Citation{}
	if len(raw) == 0 {
		return citations
	}
	// A corrupt column yields an empty slice, not an error.
	_ = json.Unmarshal(raw, &citations)
	return citations
}

// Record Mappers

func (m *ChatMapper) ChatRecordToEntity(r *model.ChatRecord) *entity.ChatRecord {
	if r == nil {
		return nil
	}
	return &entity.ChatRecord{
		Id:        r.Id,
		Message:   r.Message,
		Reply:     r.Reply,
		Model:     r.Model,
		Language:  r.Language,
		Citations: citationsFromJSON(r.Citations),
		Timestamp: r.Timestamp,
	}
}

func (m *ChatMapper) ChatRecordToModel(r *entity.ChatRecord) *model.ChatRecord {
	if r == nil {
		return nil
	}
	return &model.ChatRecord{
		Id:        r.Id,
		Message:   r.Message,
		Reply:     r.Reply,
		Model:     r.Model,
		Language:  r.Language,
		Citations: citationsToJSON(r.Citations),
		Timestamp: r.Timestamp,
	}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:          s.Id,
		Email:       s.Email,
		Title:       s.Title,
		CreatedAt:   s.CreatedAt,
		LastUpdated: s.LastUpdated,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:          s.Id,
		Email:       s.Email,
		Title:       s.Title,
		CreatedAt:   s.CreatedAt,
		LastUpdated: s.LastUpdated,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:            msg.Id,
		Email:         msg.Email,
		Question:      msg.Question,
		Reply:         msg.Reply,
		Citations:     citationsFromJSON(msg.Citations),
		ChatSessionId: msg.ChatSessionId,
		Timestamp:     msg.Timestamp,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:            msg.Id,
		Email:         msg.Email,
		Question:      msg.Question,
		Reply:         msg.Reply,
		Citations:     citationsToJSON(msg.Citations),
		ChatSessionId: msg.ChatSessionId,
		Timestamp:     msg.Timestamp,
	}
}
