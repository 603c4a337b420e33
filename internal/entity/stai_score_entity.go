package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssessmentPhaseBefore = "avant"
	AssessmentPhaseAfter  = "apres"
)

// StaiScore is one submitted 20-item STAI self-assessment.
type StaiScore struct {
	Id        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	UserName  string
	Responses []int
	Score     int
	Phase     string
	Timestamp time.Time
}
