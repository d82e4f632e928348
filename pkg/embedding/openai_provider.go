package embedding

import (
	"context"
	"errors"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client *goopenai.Client
	model  goopenai.EmbeddingModel
}

func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client: goopenai.NewClientWithConfig(cfg),
		model:  goopenai.SmallEmbedding3,
	}
}

// Generate embeds one chunk of text. taskType is accepted for interface
// compatibility; the OpenAI API does not distinguish task types.
func (p *OpenAIProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := p.client.CreateEmbeddings(ctx, goopenai.EmbeddingRequest{
		Input: []string{text},
		Model: p.model,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("embedding: empty response")
	}

	return &EmbeddingResponse{Values: resp.Data[0].Embedding}, nil
}
