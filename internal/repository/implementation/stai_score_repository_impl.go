package implementation

import (
	"context"

	"gorm.io/gorm"

	"psybot-be/internal/entity"
	"psybot-be/internal/mapper"
	"psybot-be/internal/model"
	"psybot-be/internal/repository/contract"
	"psybot-be/internal/repository/specification"
)

type StaiScoreRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StaiMapper
}

func NewStaiScoreRepository(db *gorm.DB) contract.StaiScoreRepository {
	return &StaiScoreRepositoryImpl{
		db:     db,
		mapper: mapper.NewStaiMapper(),
	}
}

func (r *StaiScoreRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StaiScoreRepositoryImpl) Create(ctx context.Context, score *entity.StaiScore) error {
	m := r.mapper.ToModel(score)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*score = *r.mapper.ToEntity(m)
	return nil
}

func (r *StaiScoreRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StaiScore, error) {
	var models []*model.StaiScore
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.StaiScore, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *StaiScoreRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StaiScore{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
