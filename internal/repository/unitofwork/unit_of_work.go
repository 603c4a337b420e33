package unitofwork

import (
	"context"

	"psybot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatRecordRepository() contract.ChatRecordRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	StaiScoreRepository() contract.StaiScoreRepository
}
