package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ContactMessage struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Email       string         `gorm:"type:varchar(255);not null;index"`
	Message     string         `gorm:"type:text;not null"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	ForwardedAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
