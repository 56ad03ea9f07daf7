package unitofwork

import (
	"context"

	"storefront-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	ContactMessageRepository() contract.ContactMessageRepository
}
