package contract

import (
	"context"
	"time"

	"storefront-be/internal/entity"
	"storefront-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactMessage, error)
	MarkForwarded(ctx context.Context, id uuid.UUID, at time.Time) error
}
