package service

import (
	"context"
	"encoding/json"

	"rlc-hub-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IPublisherService queues archive documents for the embedding consumer.
type IPublisherService interface {
	PublishEmbedDocument(ctx context.Context, documentId uuid.UUID) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (s *publisherService) PublishEmbedDocument(ctx context.Context, documentId uuid.UUID) error {
	payload := dto.PublishEmbedDocumentMessage{DocumentId: documentId}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	return s.pubSub.Publish(s.topicName, msg)
}
