package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email         string         `gorm:"type:text;not null;index"`
	Question      string         `gorm:"type:text;not null"`
	Reply         string         `gorm:"type:text;not null;default:''"`
	Citations     datatypes.JSON `gorm:"type:jsonb"`
	ChatSessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Timestamp     time.Time      `gorm:"not null"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
