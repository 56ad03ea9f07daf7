package mapper

import (
	"encoding/json"

	"storefront-be/internal/entity"
	"storefront-be/internal/model"

	"gorm.io/datatypes"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToEntity(c *model.ContactMessage) *entity.ContactMessage {
	if c == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(c.Metadata) > 0 {
		// A malformed column should not hide the message itself
		_ = json.Unmarshal(c.Metadata, &metadata)
	}

	return &entity.ContactMessage{
		Id:          c.Id,
		Name:        c.Name,
		Email:       c.Email,
		Message:     c.Message,
		Metadata:    metadata,
		ForwardedAt: c.ForwardedAt,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ContactMapper) ToModel(c *entity.ContactMessage) *model.ContactMessage {
	if c == nil {
		return nil
	}

	var metadata datatypes.JSON
	if c.Metadata != nil {
		if raw, err := json.Marshal(c.Metadata); err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	return &model.ContactMessage{
		Id:          c.Id,
		Name:        c.Name,
		Email:       c.Email,
		Message:     c.Message,
		Metadata:    metadata,
		ForwardedAt: c.ForwardedAt,
		CreatedAt:   c.CreatedAt,
	}
}
