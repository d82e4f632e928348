package dto

type CoachAskRequest struct {
	Question       string `json:"question" validate:"required,min=1"`
	ConversationId string `json:"conversation_id" validate:"required"`
	ModelId        string `json:"model_id"`
}

type CoachAskResponse struct {
	Answer         string `json:"answer"`
	ConversationId string `json:"conversation_id"`
	ModelId        string `json:"model_id"`
}

type CoachMessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CoachHistoryResponse struct {
	ConversationId string                 `json:"conversation_id"`
	Messages       []CoachMessageResponse `json:"messages"`
}
