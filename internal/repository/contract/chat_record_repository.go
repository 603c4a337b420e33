package contract

import (
	"context"

	"psybot-be/internal/entity"
	"psybot-be/internal/repository/specification"
)

type ChatRecordRepository interface {
	Create(ctx context.Context, record *entity.ChatRecord) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
