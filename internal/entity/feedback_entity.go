package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Email     string
	Subject   string
	Message   string
	Category  string
	CreatedAt time.Time
}
