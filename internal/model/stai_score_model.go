package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StaiScore struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string         `gorm:"type:text;not null;index"`
	FirstName string         `gorm:"type:text"`
	LastName  string         `gorm:"type:text"`
	UserName  string         `gorm:"type:text"`
	Responses datatypes.JSON `gorm:"type:jsonb;not null"`
	Score     int            `gorm:"not null"`
	Phase     string         `gorm:"type:text;not null"`
	Timestamp time.Time      `gorm:"not null;index"`
}

func (StaiScore) TableName() string {
	return "stai_scores"
}
