package openai

import (
	"context"
	"errors"

	"rlc-hub-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

// Provider backs llm.Provider with the OpenAI chat completions API.
type Provider struct {
	client       *goopenai.Client
	defaultModel string
}

func NewProvider(apiKey, baseURL, defaultModel string) *Provider {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if defaultModel == "" {
		defaultModel = goopenai.GPT4oMini
	}
	return &Provider{
		client:       goopenai.NewClientWithConfig(cfg),
		defaultModel: defaultModel,
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, llm.Usage, error) {
	opts := llm.Options{Temperature: 0.7}
	for _, opt := range options {
		opt(&opts)
	}

	model := p.defaultModel
	if opts.Model != "" {
		model = opts.Model
	}

	messages := make([]goopenai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", llm.Usage{}, err
	}
	if len(resp.Choices) == 0 {
		return "", llm.Usage{}, errors.New("openai: empty completion response")
	}

	usage := llm.Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}
	return resp.Choices[0].Message.Content, usage, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, llm.Usage, error) {
	return p.Chat(ctx, []llm.Message{{Role: goopenai.ChatMessageRoleUser, Content: prompt}}, options...)
}
