package specification

import "gorm.io/gorm"

// CatalogOrder returns products in insertion order, which is display order.
type CatalogOrder struct{}

func (s CatalogOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

// NotForwarded selects contact messages not yet forwarded by email.
type NotForwarded struct{}

func (s NotForwarded) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("forwarded_at IS NULL")
}
