package dto

import "storefront-be/pkg/catalog"

// ListProductsQuery carries at most one filter; nil means the parameter was absent.
type ListProductsQuery struct {
	Search   *string
	Category *string
}

type ProductResponse struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Purity      float64 `json:"purity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Filter   string            `json:"filter,omitempty"` // "search" | "category"
	Fallback bool              `json:"fallback"`
}

// Purity and price are only checked for presence and sign; the catalog
// itself treats them as unvalidated numbers.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Category    string  `json:"category" validate:"required,max=64"`
	Purity      float64 `json:"purity" validate:"gt=0,lte=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"max=2000"`
}

type CreateProductResponse struct {
	Id      string          `json:"id"`
	Product ProductResponse `json:"product"`
	Total   int             `json:"total"` // Catalog size after reload
}

func ToProductResponse(p catalog.Product) ProductResponse {
	return ProductResponse{
		Name:        p.Name,
		Category:    p.Category,
		Purity:      p.Purity,
		Price:       p.Price,
		Description: p.Description,
	}
}

func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
