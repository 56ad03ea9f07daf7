package implementation

import (
	"context"
	"errors"
	"time"

	"storefront-be/internal/entity"
	"storefront-be/internal/mapper"
	"storefront-be/internal/model"
	"storefront-be/internal/repository/contract"
	"storefront-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContactMapper
}

func NewContactMessageRepository(db *gorm.DB) contract.ContactMessageRepository {
	return &ContactMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewContactMapper(),
	}
}

func (r *ContactMessageRepositoryImpl) Create(ctx context.Context, message *entity.ContactMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContactMessageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactMessage, error) {
	var m model.ContactMessage
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContactMessageRepositoryImpl) MarkForwarded(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.ContactMessage{}).
		Where("id = ?", id).
		Update("forwarded_at", at).Error
}
