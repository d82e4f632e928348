package dto

import "github.com/google/uuid"

type SubmitFeedbackRequest struct {
	Subject  string `json:"subject" validate:"required,min=1"`
	Message  string `json:"message" validate:"required,min=1"`
	Category string `json:"category" validate:"omitempty,oneof=bug idea question other"`
}

type SubmitFeedbackResponse struct {
	Id uuid.UUID `json:"id"`
}
