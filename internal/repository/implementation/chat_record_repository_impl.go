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

type ChatRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatRecordRepository(db *gorm.DB) contract.ChatRecordRepository {
	return &ChatRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatRecordRepositoryImpl) Create(ctx context.Context, record *entity.ChatRecord) error {
	m := r.mapper.ChatRecordToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ChatRecordToEntity(m)
	return nil
}

func (r *ChatRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatRecord, error) {
	var models []*model.ChatRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatRecord, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ChatRecordToEntity(m)
	}
	return entities, nil
}

func (r *ChatRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
