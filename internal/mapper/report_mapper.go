package mapper

import (
	"encoding/json"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/model"

	"gorm.io/datatypes"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ToEntity(s *model.ReportSession) *entity.ReportSession {
	if s == nil {
		return nil
	}
	fields := map[string]string{}
	if len(s.Fields) > 0 {
		_ = json.Unmarshal(s.Fields, &fields)
	}
	var sources []entity.ReportSource
	if len(s.Sources) > 0 {
		_ = json.Unmarshal(s.Sources, &sources)
	}
	return &entity.ReportSession{
		Id:        s.Id,
		UserId:    s.UserId,
		SessionId: s.SessionId,
		Variant:   entity.ReportVariant(s.Variant),
		Fields:    fields,
		Sources:   sources,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAtPtr(s.UpdatedAt),
	}
}

func (m *ReportMapper) ToModel(s *entity.ReportSession) *model.ReportSession {
	if s == nil {
		return nil
	}
	fields := s.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	rawFields, _ := json.Marshal(fields)
	sources := s.Sources
	if sources == nil {
		sources = []entity.ReportSource{}
	}
	rawSources, _ := json.Marshal(sources)
	return &model.ReportSession{
		Id:        s.Id,
		UserId:    s.UserId,
		SessionId: s.SessionId,
		Variant:   string(s.Variant),
		Fields:    datatypes.JSON(rawFields),
		Sources:   datatypes.JSON(rawSources),
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAtValue(s.UpdatedAt),
	}
}

func (m *ReportMapper) ToEntities(sessions []*model.ReportSession) []*entity.ReportSession {
	entities := make([]*entity.ReportSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
