package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"psybot-be/internal/dto"
	"psybot-be/internal/entity"
	"psybot-be/internal/repository/specification"
	"psybot-be/internal/repository/unitofwork"
)

type IAssessmentService interface {
	Submit(ctx context.Context, email string, req *dto.SubmitAssessmentRequest) (*dto.AssessmentResponse, error)
	GetAll(ctx context.Context) ([]*dto.AssessmentResponse, error)
	GetByPatient(ctx context.Context, email string) ([]*dto.AssessmentResponse, error)
	GetStats(ctx context.Context) (*dto.AssessmentStatsResponse, error)
}

type assessmentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAssessmentService(uowFactory unitofwork.RepositoryFactory) IAssessmentService {
	return &assessmentService{uowFactory: uowFactory}
}

func toAssessmentResponse(s *entity.StaiScore) *dto.AssessmentResponse {
	return &dto.AssessmentResponse{
		Id:        s.Id,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		UserName:  s.UserName,
		Responses: s.Responses,
		Score:     s.Score,
		Phase:     s.Phase,
		Timestamp: s.Timestamp,
	}
}

func (s *assessmentService) Submit(ctx context.Context, email string, req *dto.SubmitAssessmentRequest) (*dto.AssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total := 0
	for _, v := range req.Responses {
		total += v
	}

	score := &entity.StaiScore{
		Id:        uuid.New(),
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Responses: req.Responses,
		Score:     total,
		Phase:     req.Phase,
		Timestamp: time.Now(),
	}

	if err := uow.StaiScoreRepository().Create(ctx, score); err != nil {
		return nil, err
	}

	return toAssessmentResponse(score), nil
}

func (s *assessmentService) GetAll(ctx context.Context) ([]*dto.AssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scores, err := uow.StaiScoreRepository().FindAll(ctx,
		specification.OrderBy{Field: "timestamp", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.AssessmentResponse, 0, len(scores))
	for _, sc := range scores {
		response = append(response, toAssessmentResponse(sc))
	}
	return response, nil
}

func (s *assessmentService) GetByPatient(ctx context.Context, email string) ([]*dto.AssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scores, err := uow.StaiScoreRepository().FindAll(ctx,
		specification.ByEmail{Email: email},
		specification.OrderBy{Field: "timestamp", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.AssessmentResponse, 0, len(scores))
	for _, sc := range scores {
		response = append(response, toAssessmentResponse(sc))
	}
	return response, nil
}

func (s *assessmentService) GetStats(ctx context.Context) (*dto.AssessmentStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	scores, err := uow.StaiScoreRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var sum int
	for _, sc := range scores {
		sum += sc.Score
	}
	average := 0.0
	if len(scores) > 0 {
		average = float64(sum) / float64(len(scores))
	}

	return &dto.AssessmentStatsResponse{
		TotalUsers:       totalUsers,
		TotalAssessments: int64(len(scores)),
		AverageScore:     average,
	}, nil
}
