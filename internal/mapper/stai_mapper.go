package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"psybot-be/internal/entity"
	"psybot-be/internal/model"
)

type StaiMapper struct{}

func NewStaiMapper() *StaiMapper {
	return &StaiMapper{}
}

func (m *StaiMapper) ToEntity(s *model.StaiScore) *entity.StaiScore {
	if s == nil {
		return nil
	}
	responses := []int{}
	if len(s.Responses) > 0 {
		_ = json.Unmarshal(s.Responses, &responses)
	}
	return &entity.StaiScore{
		Id:        s.Id,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		UserName:  s.UserName,
		Responses: responses,
		Score:     s.Score,
		Phase:     s.Phase,
		Timestamp: s.Timestamp,
	}
}

func (m *StaiMapper) ToModel(s *entity.StaiScore) *model.StaiScore {
	if s == nil {
		return nil
	}
	raw, err := json.Marshal(s.Responses)
	if err != nil {
		raw = []byte("[]")
	}
	return &model.StaiScore{
		Id:        s.Id,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		UserName:  s.UserName,
		Responses: datatypes.JSON(raw),
		Score:     s.Score,
		Phase:     s.Phase,
		Timestamp: s.Timestamp,
	}
}
