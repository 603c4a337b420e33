package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitAssessmentRequest struct {
	Responses []int  `json:"responses" validate:"required,len=20,dive,min=1,max=4"`
	Phase     string `json:"avant_apres" validate:"required,oneof=avant apres"`
	UserName  string `json:"userName"`
	FirstName string `json:"userFirstName"`
	LastName  string `json:"userLastName"`
}

type AssessmentResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"userFirstName"`
	LastName  string    `json:"userLastName"`
	UserName  string    `json:"userName"`
	Responses []int     `json:"responses"`
	Score     int       `json:"score"`
	Phase     string    `json:"avant_apres"`
	Timestamp time.Time `json:"timestamp"`
}

type AssessmentStatsResponse struct {
	TotalUsers       int64   `json:"total_users"`
	TotalAssessments int64   `json:"total_assessments"`
	AverageScore     float64 `json:"average_score"`
}
