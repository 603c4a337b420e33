package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRolePatient = "patient"
	UserRoleDoctor  = "medecin"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	BirthDate    *time.Time
	Gender       string
	Phone        string
	City         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
