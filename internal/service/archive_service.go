package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/serverutils"
	"rlc-hub-be/internal/repository/specification"
	"rlc-hub-be/internal/repository/unitofwork"
	"rlc-hub-be/pkg/embedding"

	"github.com/google/uuid"
)

type IArchiveService interface {
	Upload(ctx context.Context, userId, projectId uuid.UUID, fileHeader *multipart.FileHeader) (*dto.UploadDocumentResponse, error)
	List(ctx context.Context, userId, projectId uuid.UUID) ([]*dto.ArchiveDocumentResponse, error)
	Delete(ctx context.Context, userId, documentId uuid.UUID) error
	Search(ctx context.Context, userId uuid.UUID, req *dto.ArchiveSearchRequest) ([]*dto.ArchiveSearchHit, error)
}

type archiveService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
	uploadDir         string
}

func NewArchiveService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
	uploadDir string,
) IArchiveService {
	return &archiveService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
		uploadDir:         uploadDir,
	}
}

// readTextContent extracts raw text from the upload. Only text-based formats
// are indexed; binary uploads are stored but skipped by the embed pipeline.
func readTextContent(fileHeader *multipart.FileHeader) (string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".txt", ".md", ".csv", ".json", ".html":
		return string(data), nil
	default:
		return "", nil
	}
}

func (s *archiveService) Upload(ctx context.Context, userId, projectId uuid.UUID, fileHeader *multipart.FileHeader) (*dto.UploadDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}

	textContent, err := readTextContent(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	docId := uuid.New()
	storageName := fmt.Sprintf("%s%s", docId, filepath.Ext(fileHeader.Filename))
	storagePath := filepath.Join(s.uploadDir, storageName)

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, err
	}
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	dst, err := os.Create(storagePath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	doc := &entity.ArchiveDocument{
		Id:          docId,
		ProjectId:   projectId,
		UploadedBy:  userId,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		StoragePath: storagePath,
		TextContent: textContent,
		CreatedAt:   time.Now(),
	}

	if err := uow.ArchiveDocumentRepository().Create(ctx, doc); err != nil {
		_ = os.Remove(storagePath)
		return nil, err
	}

	if textContent != "" && s.publisherService != nil {
		if err := s.publisherService.PublishEmbedDocument(ctx, doc.Id); err != nil {
			fmt.Printf("[WARN] Failed to queue embedding for document %s: %v\n", doc.Id, err)
		}
	}

	return &dto.UploadDocumentResponse{Id: doc.Id, FileName: doc.FileName}, nil
}

func (s *archiveService) List(ctx context.Context, userId, projectId uuid.UUID) ([]*dto.ArchiveDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}

	docs, err := uow.ArchiveDocumentRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ArchiveDocumentResponse, len(docs))
	for i, d := range docs {
		res[i] = &dto.ArchiveDocumentResponse{
			Id:          d.Id,
			ProjectId:   d.ProjectId,
			FileName:    d.FileName,
			ContentType: d.ContentType,
			SizeBytes:   d.SizeBytes,
			CreatedAt:   d.CreatedAt,
		}
	}
	return res, nil
}

func (s *archiveService) Delete(ctx context.Context, userId, documentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.ArchiveDocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return err
	}
	if doc == nil {
		return serverutils.NotFound("document not found")
	}
	if _, err := findOwnedProject(ctx, uow, userId, doc.ProjectId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.DocumentEmbeddingRepository().DeleteByDocumentId(ctx, doc.Id); err != nil {
		return err
	}
	if err := uow.ArchiveDocumentRepository().Delete(ctx, doc.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	_ = os.Remove(doc.StoragePath)
	return nil
}

func (s *archiveService) Search(ctx context.Context, userId uuid.UUID, req *dto.ArchiveSearchRequest) ([]*dto.ArchiveSearchHit, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, req.ProjectId); err != nil {
		return nil, err
	}

	queryEmbedding, err := s.embeddingProvider.Generate(req.Query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	hits, err := uow.DocumentEmbeddingRepository().SearchSimilar(ctx, queryEmbedding.Values, limit, req.ProjectId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ArchiveSearchHit, len(hits))
	for i, h := range hits {
		res[i] = &dto.ArchiveSearchHit{
			DocumentId: h.DocumentId,
			FileName:   h.FileName,
			Snippet:    h.Chunk,
			Score:      h.Score,
		}
	}
	return res, nil
}
