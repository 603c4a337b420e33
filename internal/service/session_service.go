package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"psybot-be/internal/dto"
	"psybot-be/internal/entity"
	"psybot-be/internal/repository/specification"
	"psybot-be/internal/repository/unitofwork"
	"psybot-be/pkg/upstream"
)

const sessionTitleMaxLen = 40

type ISessionService interface {
	CreateSession(ctx context.Context, email string) (*dto.CreateSessionResponse, error)
	GetSessions(ctx context.Context, email string) ([]*dto.SessionResponse, error)
	GetMessages(ctx context.Context, email string, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
	PostMessage(ctx context.Context, email string, sessionId uuid.UUID, req *dto.PostMessageRequest) (*dto.MessageResponse, error)
	PatchMessageReply(ctx context.Context, email string, messageId uuid.UUID, req *dto.PatchMessageRequest) error
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory) ISessionService {
	return &sessionService{uowFactory: uowFactory}
}

// DeriveTitle shortens the first user message into a session title: the
// first 40 characters plus an ellipsis when truncated.
func DeriveTitle(firstMessage string) string {
	runes := []rune(firstMessage)
	if len(runes) > sessionTitleMaxLen {
		return string(runes[:sessionTitleMaxLen]) + "..."
	}
	return firstMessage
}

func (s *sessionService) CreateSession(ctx context.Context, email string) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		Email:     email,
		Title:     "", // empty until the first user message is known
		CreatedAt: time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

func (s *sessionService) GetSessions(ctx context.Context, email string) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByEmail{Email: email},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		response = append(response, &dto.SessionResponse{
			Id:          sess.Id,
			Title:       sess.Title,
			CreatedAt:   sess.CreatedAt,
			LastUpdated: sess.LastUpdated,
		})
	}

	return response, nil
}

func (s *sessionService) verifySession(ctx context.Context, uow unitofwork.UnitOfWork, email string, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByEmail{Email: email},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("session not found or access denied")
	}
	return session, nil
}

func (s *sessionService) GetMessages(ctx context.Context, email string, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.verifySession(ctx, uow, email, sessionId); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "timestamp", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, &dto.MessageResponse{
			Id:        msg.Id,
			Question:  msg.Question,
			Reply:     msg.Reply,
			Citations: msg.Citations,
			Timestamp: msg.Timestamp,
		})
	}

	return response, nil
}

func (s *sessionService) PostMessage(ctx context.Context, email string, sessionId uuid.UUID, req *dto.PostMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.verifySession(ctx, uow, email, sessionId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	message := &entity.ChatMessage{
		Id:            uuid.New(),
		Email:         email,
		Question:      req.Question,
		Reply:         "", // patched once the upstream call completes
		Citations:     []upstream.Citation{},
		ChatSessionId: sessionId,
		Timestamp:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	// Title is set once, from the first user message, and never overwritten.
	if session.Title == "" {
		session.Title = DeriveTitle(req.Question)
		session.LastUpdated = &now
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{
		Id:        message.Id,
		Question:  message.Question,
		Reply:     message.Reply,
		Citations: message.Citations,
		Timestamp: message.Timestamp,
	}, nil
}

func (s *sessionService) PatchMessageReply(ctx context.Context, email string, messageId uuid.UUID, req *dto.PatchMessageRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	message, err := uow.ChatMessageRepository().FindOne(ctx,
		specification.ByID{ID: messageId},
		specification.ByEmail{Email: email},
	)
	if err != nil {
		return err
	}
	if message == nil {
		return errors.New("message not found or access denied")
	}

	message.Reply = req.Reply
	message.Citations = req.Citations
	if message.Citations == nil {
		message.Citations = []upstream.Citation{}
	}

	return uow.ChatMessageRepository().Update(ctx, message)
}
