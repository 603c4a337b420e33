package contract

import (
	"context"

	"psybot-be/internal/entity"
	"psybot-be/internal/repository/specification"
)

type StaiScoreRepository interface {
	Create(ctx context.Context, score *entity.StaiScore) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StaiScore, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
