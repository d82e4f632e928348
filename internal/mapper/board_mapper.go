package mapper

import (
	"encoding/json"
	"time"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/model"

	"gorm.io/datatypes"
)

func updatedAtPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	copied := t
	return &copied
}

func updatedAtValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	return &entity.Project{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		OwnerId:     p.OwnerId,
		TenantId:    p.TenantId,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAtPtr(p.UpdatedAt),
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		OwnerId:     p.OwnerId,
		TenantId:    p.TenantId,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAtValue(p.UpdatedAt),
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

type IntegrationEventMapper struct{}

func NewIntegrationEventMapper() *IntegrationEventMapper {
	return &IntegrationEventMapper{}
}

func (m *IntegrationEventMapper) ToEntity(e *model.IntegrationEvent) *entity.IntegrationEvent {
	if e == nil {
		return nil
	}
	return &entity.IntegrationEvent{
		Id:          e.Id,
		ProjectId:   e.ProjectId,
		Name:        e.Name,
		Description: e.Description,
		EventDate:   e.EventDate,
		Sequence:    e.Sequence,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAtPtr(e.UpdatedAt),
	}
}

func (m *IntegrationEventMapper) ToModel(e *entity.IntegrationEvent) *model.IntegrationEvent {
	if e == nil {
		return nil
	}
	return &model.IntegrationEvent{
		Id:          e.Id,
		ProjectId:   e.ProjectId,
		Name:        e.Name,
		Description: e.Description,
		EventDate:   e.EventDate,
		Sequence:    e.Sequence,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAtValue(e.UpdatedAt),
	}
}

func (m *IntegrationEventMapper) ToEntities(events []*model.IntegrationEvent) []*entity.IntegrationEvent {
	entities := make([]*entity.IntegrationEvent, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

type KeyDecisionMapper struct{}

func NewKeyDecisionMapper() *KeyDecisionMapper {
	return &KeyDecisionMapper{}
}

func (m *KeyDecisionMapper) ToEntity(d *model.KeyDecision) *entity.KeyDecision {
	if d == nil {
		return nil
	}
	return &entity.KeyDecision{
		Id:                 d.Id,
		ProjectId:          d.ProjectId,
		IntegrationEventId: d.IntegrationEventId,
		Title:              d.Title,
		Description:        d.Description,
		Status:             d.Status,
		Owner:              d.Owner,
		DecisionMaker:      d.DecisionMaker,
		DueDate:            d.DueDate,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          updatedAtPtr(d.UpdatedAt),
	}
}

func (m *KeyDecisionMapper) ToModel(d *entity.KeyDecision) *model.KeyDecision {
	if d == nil {
		return nil
	}
	return &model.KeyDecision{
		Id:                 d.Id,
		ProjectId:          d.ProjectId,
		IntegrationEventId: d.IntegrationEventId,
		Title:              d.Title,
		Description:        d.Description,
		Status:             d.Status,
		Owner:              d.Owner,
		DecisionMaker:      d.DecisionMaker,
		DueDate:            d.DueDate,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          updatedAtValue(d.UpdatedAt),
	}
}

func (m *KeyDecisionMapper) ToEntities(decisions []*model.KeyDecision) []*entity.KeyDecision {
	entities := make([]*entity.KeyDecision, len(decisions))
	for i, d := range decisions {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

type KnowledgeGapMapper struct{}

func NewKnowledgeGapMapper() *KnowledgeGapMapper {
	return &KnowledgeGapMapper{}
}

func (m *KnowledgeGapMapper) ToEntity(g *model.KnowledgeGap) *entity.KnowledgeGap {
	if g == nil {
		return nil
	}
	var contributors []string
	if len(g.Contributors) > 0 {
		// Bad JSON here means a manual edit; treat as empty rather than fail
		_ = json.Unmarshal(g.Contributors, &contributors)
	}
	return &entity.KnowledgeGap{
		Id:            g.Id,
		ProjectId:     g.ProjectId,
		KeyDecisionId: g.KeyDecisionId,
		Title:         g.Title,
		Description:   g.Description,
		Status:        g.Status,
		Owner:         g.Owner,
		Contributors:  contributors,
		LearningPlan:  g.LearningPlan,
		DueDate:       g.DueDate,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     updatedAtPtr(g.UpdatedAt),
	}
}

func (m *KnowledgeGapMapper) ToModel(g *entity.KnowledgeGap) *model.KnowledgeGap {
	if g == nil {
		return nil
	}
	contributors := g.Contributors
	if contributors == nil {
		contributors = []string{}
	}
	raw, _ := json.Marshal(contributors)
	return &model.KnowledgeGap{
		Id:            g.Id,
		ProjectId:     g.ProjectId,
		KeyDecisionId: g.KeyDecisionId,
		Title:         g.Title,
		Description:   g.Description,
		Status:        g.Status,
		Owner:         g.Owner,
		Contributors:  datatypes.JSON(raw),
		LearningPlan:  g.LearningPlan,
		DueDate:       g.DueDate,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     updatedAtValue(g.UpdatedAt),
	}
}

func (m *KnowledgeGapMapper) ToEntities(gaps []*model.KnowledgeGap) []*entity.KnowledgeGap {
	entities := make([]*entity.KnowledgeGap, len(gaps))
	for i, g := range gaps {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
