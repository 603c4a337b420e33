package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id          uuid.UUID
	Email       string
	Title       string
	CreatedAt   time.Time
	LastUpdated *time.Time
}
