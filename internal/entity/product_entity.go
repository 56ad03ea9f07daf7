// internal\entity\product_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id          uuid.UUID
	Name        string
	Category    string
	Purity      float64
	Price       float64
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
