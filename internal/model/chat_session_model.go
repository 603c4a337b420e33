package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email       string     `gorm:"type:text;not null;index"` // owner, keyed by authenticated email
	Title       string     `gorm:"type:text;not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	LastUpdated *time.Time
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
