package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:text;not null"`
	FirstName    string     `gorm:"type:text"`
	LastName     string     `gorm:"type:text"`
	BirthDate    *time.Time `gorm:"type:date"`
	Gender       string     `gorm:"type:text"`
	Phone        string     `gorm:"type:text"`
	City         string     `gorm:"type:text"`
	Role         string     `gorm:"type:text;not null;default:'patient'"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
