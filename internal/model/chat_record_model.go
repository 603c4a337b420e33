package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatRecord struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Message   string         `gorm:"type:text;not null"`
	Reply     string         `gorm:"type:text;not null"`
	Model     string         `gorm:"type:text;not null"`
	Language  string         `gorm:"type:text;not null"`
	Citations datatypes.JSON `gorm:"type:jsonb"`
	Timestamp time.Time      `gorm:"not null;index"`
}

func (ChatRecord) TableName() string {
	return "chats"
}
