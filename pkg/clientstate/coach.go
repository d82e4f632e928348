package clientstate

import "github.com/google/uuid"

// Message roles in a coach or report-writer conversation.
const (
	RoleUserMessage      = "user"
	RoleAssistantMessage = "assistant"
)

const coachWelcome = "Hi! I'm your Rapid Learning Cycles coach. Ask me about key decisions, knowledge gaps, or how to prepare your next integration event."

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CoachState is the persisted AI-coach conversation for one identity.
// Transient UI flags (loading, input buffer, suggestion visibility) live in
// the view layer and are deliberately not part of this type, so they can
// never be persisted.
type CoachState struct {
	ConversationId string    `json:"conversation_id"`
	Messages       []Message `json:"messages"`
	ModelId        string    `json:"model_id,omitempty"`
}

// NewCoachState seeds a fresh conversation with a welcome message and a new
// client-generated correlation id.
func NewCoachState() CoachState {
	return CoachState{
		ConversationId: uuid.New().String(),
		Messages: []Message{
			{Role: RoleAssistantMessage, Content: coachWelcome},
		},
	}
}

// Trivial reports whether the state holds nothing beyond the seeded welcome.
func (s CoachState) Trivial() bool {
	if len(s.Messages) > 1 {
		return false
	}
	if len(s.Messages) == 1 && s.Messages[0].Role != RoleAssistantMessage {
		return false
	}
	return true
}

// Append returns the state with one more message. Slices are copied so a
// restored state is never aliased by the caller.
func (s CoachState) Append(role, content string) CoachState {
	msgs := make([]Message, 0, len(s.Messages)+1)
	msgs = append(msgs, s.Messages...)
	msgs = append(msgs, Message{Role: role, Content: content})
	s.Messages = msgs
	return s
}

// NewCoachStore builds the namespaced container for coach conversations.
func NewCoachStore(storage Storage, namespace func() string) *NamespacedStore[CoachState] {
	return NewNamespacedStore(storage, CoachStatePrefix, namespace, NewCoachState)
}
