package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/logger"
	"rlc-hub-be/internal/repository/specification"
	"rlc-hub-be/internal/repository/unitofwork"
	"rlc-hub-be/pkg/embedding"
	"rlc-hub-be/pkg/llm"

	"github.com/google/uuid"
)

const reportSystemPrompt = `You are a report-writing assistant for Rapid
Learning Cycles teams. The user is drafting a %s report. Help them turn rough
notes into clear, complete report text. When the user asks you to fill or
improve a field, answer with the improved text only.`

// requiredReportFields lists what a report must carry per variant before it
// can be considered complete.
var requiredReportFields = map[entity.ReportVariant][]string{
	entity.ReportVariantKnowledgeGap: {"title", "owner", "question", "findings", "recommendation"},
	entity.ReportVariantKeyDecision:  {"title", "decision_maker", "decision", "rationale"},
}

type IReportService interface {
	Message(ctx context.Context, userId uuid.UUID, req *dto.ReportMessageRequest) (*dto.ReportMessageResponse, error)
	Evaluate(ctx context.Context, userId uuid.UUID, req *dto.ReportEvaluateRequest) (*dto.ReportEvaluateResponse, error)
	CheckArchive(ctx context.Context, userId uuid.UUID, req *dto.ReportCheckArchiveRequest) (*dto.ReportCheckArchiveResponse, error)
}

type reportService struct {
	uowFactory        unitofwork.RepositoryFactory
	llmProvider       llm.Provider
	embeddingProvider embedding.EmbeddingProvider
	usageService      IUsageService
	logger            logger.ILogger
	model             string
}

func NewReportService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.Provider,
	embeddingProvider embedding.EmbeddingProvider,
	usageService IUsageService,
	log logger.ILogger,
	model string,
) IReportService {
	return &reportService{
		uowFactory:        uowFactory,
		llmProvider:       llmProvider,
		embeddingProvider: embeddingProvider,
		usageService:      usageService,
		logger:            log,
		model:             model,
	}
}

func (s *reportService) loadOrCreateSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sessionId string, variant entity.ReportVariant) (*entity.ReportSession, error) {
	session, err := uow.ReportSessionRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.BySessionID{SessionID: sessionId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = &entity.ReportSession{
			Id:        uuid.New(),
			UserId:    userId,
			SessionId: sessionId,
			Variant:   variant,
			Fields:    map[string]string{},
			Sources:   []entity.ReportSource{},
			CreatedAt: time.Now(),
		}
		if err := uow.ReportSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (s *reportService) Message(ctx context.Context, userId uuid.UUID, req *dto.ReportMessageRequest) (*dto.ReportMessageResponse, error) {
	if err := s.usageService.CheckLimit(ctx, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	variant := entity.ReportVariant(req.Variant)
	session, err := s.loadOrCreateSession(ctx, uow, userId, req.SessionId, variant)
	if err != nil {
		return nil, err
	}

	// Merge the latest client-side field values before prompting
	for k, v := range req.Fields {
		session.Fields[k] = v
	}

	var sb strings.Builder
	sb.WriteString("Current report fields:\n")
	for k, v := range session.Fields {
		fmt.Fprintf(&sb, "- %s: %s\n", k, v)
	}
	sb.WriteString("\nUser request: ")
	sb.WriteString(req.Message)

	history := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(reportSystemPrompt, strings.ReplaceAll(req.Variant, "_", " "))},
		{Role: "user", Content: sb.String()},
	}

	reply, usage, err := s.llmProvider.Chat(ctx, history, llm.WithModel(s.model))
	if err != nil {
		s.logger.Error("report", "chat completion failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("report assistant is unavailable right now: %w", err)
	}

	if err := uow.ReportSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := s.usageService.Record(ctx, userId, usage); err != nil {
		s.logger.Warn("report", "failed to record token usage", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}

	return &dto.ReportMessageResponse{
		SessionId: req.SessionId,
		Reply:     reply,
		Fields:    session.Fields,
	}, nil
}

// Evaluate checks completeness locally first; the model is only consulted
// for a qualitative assessment once every required field carries text.
func (s *reportService) Evaluate(ctx context.Context, userId uuid.UUID, req *dto.ReportEvaluateRequest) (*dto.ReportEvaluateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	variant := entity.ReportVariant(req.Variant)
	session, err := s.loadOrCreateSession(ctx, uow, userId, req.SessionId, variant)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Fields {
		session.Fields[k] = v
	}
	if err := uow.ReportSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	var missing []string
	for _, field := range requiredReportFields[variant] {
		if strings.TrimSpace(session.Fields[field]) == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return &dto.ReportEvaluateResponse{
			SessionId:     req.SessionId,
			Complete:      false,
			MissingFields: missing,
			Assessment:    fmt.Sprintf("The report is missing: %s", strings.Join(missing, ", ")),
		}, nil
	}

	if err := s.usageService.CheckLimit(ctx, userId); err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Evaluate this %s report for clarity and completeness. Give a short assessment in at most three sentences.\n\n", strings.ReplaceAll(req.Variant, "_", " "))
	for k, v := range session.Fields {
		fmt.Fprintf(&sb, "%s: %s\n", k, v)
	}

	assessment, usage, err := s.llmProvider.Generate(ctx, sb.String(), llm.WithModel(s.model))
	if err != nil {
		// Field check already passed; degrade to a plain confirmation
		assessment = "All required fields are filled."
	} else if recErr := s.usageService.Record(ctx, userId, usage); recErr != nil {
		s.logger.Warn("report", "failed to record token usage", map[string]interface{}{
			"user_id": userId.String(),
			"error":   recErr.Error(),
		})
	}

	return &dto.ReportEvaluateResponse{
		SessionId:     req.SessionId,
		Complete:      true,
		MissingFields: []string{},
		Assessment:    assessment,
	}, nil
}

// CheckArchive looks for prior work relevant to the report draft and pins
// the hits to the session as sources.
func (s *reportService) CheckArchive(ctx context.Context, userId uuid.UUID, req *dto.ReportCheckArchiveRequest) (*dto.ReportCheckArchiveResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := findOwnedProject(ctx, uow, userId, req.ProjectId); err != nil {
		return nil, err
	}

	session, err := uow.ReportSessionRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.BySessionID{SessionID: req.SessionId},
	)
	if err != nil {
		return nil, err
	}

	queryEmbedding, err := s.embeddingProvider.Generate(req.Query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("failed to embed archive query: %w", err)
	}

	hits, err := uow.DocumentEmbeddingRepository().SearchSimilar(ctx, queryEmbedding.Values, 5, req.ProjectId)
	if err != nil {
		return nil, err
	}

	sources := make([]entity.ReportSource, len(hits))
	res := make([]dto.ReportSourceResponse, len(hits))
	for i, h := range hits {
		sources[i] = entity.ReportSource{
			DocumentId: h.DocumentId,
			FileName:   h.FileName,
			Snippet:    h.Chunk,
			Score:      h.Score,
		}
		res[i] = dto.ReportSourceResponse{
			DocumentId: h.DocumentId,
			FileName:   h.FileName,
			Snippet:    h.Chunk,
			Score:      h.Score,
		}
	}

	if session != nil {
		session.Sources = sources
		if err := uow.ReportSessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
	}

	return &dto.ReportCheckArchiveResponse{
		SessionId: req.SessionId,
		Sources:   res,
	}, nil
}
