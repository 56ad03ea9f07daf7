package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	Id          uuid.UUID
	Name        string
	Email       string
	Message     string
	Metadata    map[string]interface{} // Client IP, user agent
	ForwardedAt *time.Time
	CreatedAt   time.Time
}
