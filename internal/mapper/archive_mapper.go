package mapper

import (
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ArchiveMapper struct{}

func NewArchiveMapper() *ArchiveMapper {
	return &ArchiveMapper{}
}

func (m *ArchiveMapper) ToEntity(d *model.ArchiveDocument) *entity.ArchiveDocument {
	if d == nil {
		return nil
	}
	return &entity.ArchiveDocument{
		Id:          d.Id,
		ProjectId:   d.ProjectId,
		UploadedBy:  d.UploadedBy,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		StoragePath: d.StoragePath,
		TextContent: d.TextContent,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *ArchiveMapper) ToModel(d *entity.ArchiveDocument) *model.ArchiveDocument {
	if d == nil {
		return nil
	}
	return &model.ArchiveDocument{
		Id:          d.Id,
		ProjectId:   d.ProjectId,
		UploadedBy:  d.UploadedBy,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		StoragePath: d.StoragePath,
		TextContent: d.TextContent,
		CreatedAt:   d.CreatedAt,
	}
}

func (m *ArchiveMapper) ToEntities(docs []*model.ArchiveDocument) []*entity.ArchiveDocument {
	entities := make([]*entity.ArchiveDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func (m *ArchiveMapper) EmbeddingToModel(e *entity.DocumentEmbedding) *model.DocumentEmbedding {
	if e == nil {
		return nil
	}
	return &model.DocumentEmbedding{
		Id:             e.Id,
		DocumentId:     e.DocumentId,
		ChunkIndex:     e.ChunkIndex,
		Chunk:          e.Chunk,
		EmbeddingValue: pgvector.NewVector(e.Values),
		CreatedAt:      e.CreatedAt,
	}
}
