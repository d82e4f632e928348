package service

import (
	"context"
	"fmt"
	"time"

	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/logger"
	"rlc-hub-be/internal/repository/specification"
	"rlc-hub-be/internal/repository/unitofwork"
	"rlc-hub-be/pkg/llm"

	"github.com/google/uuid"
)

const coachSystemPrompt = `You are an experienced Rapid Learning Cycles coach.
You help hardware and product development teams structure their work around
key decisions, knowledge gaps, and integration events. Answer practically and
concretely; when the user describes their project, relate your advice to the
RLC framework. Keep answers short enough to read between meetings.`

// Conversation history sent to the model is capped to bound prompt size.
const coachHistoryLimit = 20

type ICoachService interface {
	Ask(ctx context.Context, userId uuid.UUID, req *dto.CoachAskRequest) (*dto.CoachAskResponse, error)
	History(ctx context.Context, userId uuid.UUID, conversationId string) (*dto.CoachHistoryResponse, error)
}

type coachService struct {
	uowFactory   unitofwork.RepositoryFactory
	llmProvider  llm.Provider
	usageService IUsageService
	logger       logger.ILogger
	defaultModel string
}

func NewCoachService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.Provider,
	usageService IUsageService,
	log logger.ILogger,
	defaultModel string,
) ICoachService {
	return &coachService{
		uowFactory:   uowFactory,
		llmProvider:  llmProvider,
		usageService: usageService,
		logger:       log,
		defaultModel: defaultModel,
	}
}

func (s *coachService) Ask(ctx context.Context, userId uuid.UUID, req *dto.CoachAskRequest) (*dto.CoachAskResponse, error) {
	if err := s.usageService.CheckLimit(ctx, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.CoachConversationRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByConversationID{ConversationID: req.ConversationId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		title := req.Question
		if len(title) > 80 {
			title = title[:80]
		}
		conversation = &entity.CoachConversation{
			Id:             uuid.New(),
			UserId:         userId,
			ConversationId: req.ConversationId,
			Title:          title,
			CreatedAt:      time.Now(),
		}
		if err := uow.CoachConversationRepository().Create(ctx, conversation); err != nil {
			return nil, err
		}
	}

	previous, err := uow.CoachMessageRepository().FindAll(ctx,
		specification.ByConversationRef{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	history := []llm.Message{{Role: "system", Content: coachSystemPrompt}}
	start := 0
	if len(previous) > coachHistoryLimit {
		start = len(previous) - coachHistoryLimit
	}
	for _, m := range previous[start:] {
		history = append(history, llm.Message{Role: string(m.Role), Content: m.Content})
	}
	history = append(history, llm.Message{Role: "user", Content: req.Question})

	modelId := req.ModelId
	if modelId == "" {
		modelId = s.defaultModel
	}

	answer, usage, err := s.llmProvider.Chat(ctx, history, llm.WithModel(modelId))
	if err != nil {
		s.logger.Error("coach", "chat completion failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("coach is unavailable right now: %w", err)
	}

	userMsg := &entity.CoachMessage{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           entity.MessageRoleUser,
		Content:        req.Question,
		ModelId:        modelId,
		CreatedAt:      time.Now(),
	}
	assistantMsg := &entity.CoachMessage{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           entity.MessageRoleAssistant,
		Content:        answer,
		ModelId:        modelId,
		CreatedAt:      time.Now().Add(time.Millisecond),
	}
	if err := uow.CoachMessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}
	if err := uow.CoachMessageRepository().Create(ctx, assistantMsg); err != nil {
		return nil, err
	}

	if err := s.usageService.Record(ctx, userId, usage); err != nil {
		s.logger.Warn("coach", "failed to record token usage", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}

	return &dto.CoachAskResponse{
		Answer:         answer,
		ConversationId: req.ConversationId,
		ModelId:        modelId,
	}, nil
}

func (s *coachService) History(ctx context.Context, userId uuid.UUID, conversationId string) (*dto.CoachHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.CoachConversationRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByConversationID{ConversationID: conversationId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return &dto.CoachHistoryResponse{ConversationId: conversationId, Messages: []dto.CoachMessageResponse{}}, nil
	}

	messages, err := uow.CoachMessageRepository().FindAll(ctx,
		specification.ByConversationRef{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.CoachMessageResponse, len(messages))
	for i, m := range messages {
		res[i] = dto.CoachMessageResponse{Role: string(m.Role), Content: m.Content}
	}
	return &dto.CoachHistoryResponse{ConversationId: conversationId, Messages: res}, nil
}
