package llm

import "context"

// Message is one chat turn in a provider-agnostic shape.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // override the provider's default model
}

type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) { o.Temperature = temp }
}

func WithMaxTokens(n int) Option {
	return func(o *Options) { o.MaxTokens = n }
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

// Usage reports the token spend of one completion. It feeds the per-user
// token-usage ledger.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

func (u Usage) Total() int {
	return u.PromptTokens + u.CompletionTokens
}

// Provider is the contract for any chat model backend.
type Provider interface {
	// Chat sends a conversation to the model and returns the assistant reply.
	Chat(ctx context.Context, history []Message, options ...Option) (string, Usage, error)

	// Generate is the single-prompt convenience form of Chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, Usage, error)
}
