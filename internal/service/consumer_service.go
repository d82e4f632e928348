package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"rlc-hub-be/internal/dto"
	"rlc-hub-be/internal/entity"
	"rlc-hub-be/internal/repository/specification"
	"rlc-hub-be/internal/repository/unitofwork"
	"rlc-hub-be/pkg/embedding"
	"rlc-hub-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the embed-document topic: it chunks the document
// text, embeds each chunk, and replaces the stored vectors.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed message: %v", err)
		msg.Ack() // invalid payload retries forever otherwise
		return
	}

	log.Printf("[INFO] Embedding archive document %s", payload.DocumentId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.ArchiveDocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		log.Printf("[ERROR] Failed to load document %s: %v", payload.DocumentId, err)
		msg.Nack()
		return
	}
	if doc == nil {
		// Deleted between upload and processing
		msg.Ack()
		return
	}

	content := fmt.Sprintf("File: %s\n\n%s", doc.FileName, doc.TextContent)

	// 1500 chars per chunk with 200 overlap keeps each piece well inside the
	// embedding model's context
	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Document %s split into %d chunks", doc.Id, len(chunks))

	var newEmbeddings []*entity.DocumentEmbedding
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of document %s: %v", i, doc.Id, err)
			msg.Nack()
			return
		}
		newEmbeddings = append(newEmbeddings, &entity.DocumentEmbedding{
			Id:         uuid.New(),
			DocumentId: doc.Id,
			ChunkIndex: i,
			Chunk:      chunk,
			Values:     res.Values,
			CreatedAt:  time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to start embedding tx for document %s: %v", doc.Id, err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.DocumentEmbeddingRepository().DeleteByDocumentId(ctx, doc.Id); err != nil {
		log.Printf("[ERROR] Failed to clear embeddings for document %s: %v", doc.Id, err)
		msg.Nack()
		return
	}
	if err := uow.DocumentEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
		log.Printf("[ERROR] Failed to store embeddings for document %s: %v", doc.Id, err)
		msg.Nack()
		return
	}
	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit embeddings for document %s: %v", doc.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Stored %d embeddings for document %s", len(newEmbeddings), doc.Id)
	msg.Ack()
}
