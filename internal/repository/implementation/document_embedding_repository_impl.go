package implementation

import (
	"context"

	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/mapper"
	"rlc-hub-be/internal/model"
	"rlc-hub-be/internal/repository/contract"
	"rlc-hub-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type DocumentEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ArchiveMapper
}

func NewDocumentEmbeddingRepository(db *gorm.DB) contract.DocumentEmbeddingRepository {
	return &DocumentEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewArchiveMapper(),
	}
}

func (r *DocumentEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.DocumentEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.DocumentEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.EmbeddingToModel(e)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		embeddings[i].Id = m.Id
	}
	return nil
}

func (r *DocumentEmbeddingRepositoryImpl) DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("document_id = ?", documentId).Delete(&model.DocumentEmbedding{}).Error
}

func (r *DocumentEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DocumentEmbedding{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchSimilar joins through archive_documents to scope the search to one
// project. Cosine distance in pgvector is 1 - cosine_similarity, so the
// score reported back is 1 - (embedding_value <=> query).
func (r *DocumentEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, projectId uuid.UUID) ([]*entity.ScoredChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		DocumentId uuid.UUID
		FileName   string
		Chunk      string
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("document_embeddings").
		Select("document_embeddings.document_id, archive_documents.file_name, document_embeddings.chunk, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN archive_documents ON archive_documents.id = document_embeddings.document_id").
		Where("archive_documents.project_id = ?", projectId).
		Where("archive_documents.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	chunks := make([]*entity.ScoredChunk, len(results))
	for i, res := range results {
		chunks[i] = &entity.ScoredChunk{
			DocumentId: res.DocumentId,
			FileName:   res.FileName,
			Chunk:      res.Chunk,
			Score:      float32(res.Similarity),
		}
	}
	return chunks, nil
}
