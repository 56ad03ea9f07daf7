package mapper

import (
	"time"

	"storefront-be/internal/entity"
	"storefront-be/internal/model"
	"storefront-be/pkg/catalog"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Product{
		Id:          p.Id,
		Name:        p.Name,
		Category:    p.Category,
		Purity:      p.Purity,
		Price:       p.Price,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Product{
		Id:          p.Id,
		Name:        p.Name,
		Category:    p.Category,
		Purity:      p.Purity,
		Price:       p.Price,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

// ToCatalog drops storage fields; the engines only see catalog.Product.
func (m *ProductMapper) ToCatalog(products []*entity.Product) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		out = append(out, catalog.Product{
			Name:        p.Name,
			Category:    p.Category,
			Purity:      p.Purity,
			Price:       p.Price,
			Description: p.Description,
		})
	}
	return out
}

func (m *ProductMapper) FromCatalog(p catalog.Product) *entity.Product {
	return &entity.Product{
		Name:        p.Name,
		Category:    p.Category,
		Purity:      p.Purity,
		Price:       p.Price,
		Description: p.Description,
	}
}
