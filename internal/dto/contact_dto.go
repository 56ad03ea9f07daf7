package dto

import "github.com/google/uuid"

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

type ContactResponse struct {
	Id uuid.UUID `json:"id"`
}

// PublishContactMessage is the payload of the in-process forwarding queue.
type PublishContactMessage struct {
	ContactId uuid.UUID `json:"contact_id"`
}
