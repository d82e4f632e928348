package service

import (
	"context"
	"fmt"
	"time"

	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/pkg/mailer"
	"rlc-hub-be/internal/repository/specification"
	"rlc-hub-be/internal/repository/unitofwork"

	"rlc-hub-be/pkg/events"
	pktNats "rlc-hub-be/pkg/nats"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	Submit(ctx context.Context, userId uuid.UUID, email string, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
}

type feedbackService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IFeedbackService {
	return &feedbackService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (s *feedbackService) Submit(ctx context.Context, userId uuid.UUID, email string, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if email == "" {
		if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}); err == nil && user != nil {
			email = user.Email
		}
	}

	feedback := &entity.Feedback{
		Id:        uuid.New(),
		UserId:    userId,
		Email:     email,
		Subject:   req.Subject,
		Message:   req.Message,
		Category:  req.Category,
		CreatedAt: time.Now(),
	}
	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeFeedbackSubmitted,
			Data: map[string]interface{}{
				"feedback_id": feedback.Id,
				"user_id":     userId,
				"category":    req.Category,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish FEEDBACK_SUBMITTED event: %v\n", err)
		}
	}

	if email != "" {
		go func() {
			if err := s.emailService.SendFeedbackReceipt(email, req.Subject); err != nil {
				fmt.Printf("Error sending feedback receipt: %v\n", err)
			}
		}()
	}

	return &dto.SubmitFeedbackResponse{Id: feedback.Id}, nil
}
