// Package mapper converts between the wire DTOs and the stored entity.
// Input is assumed to be validated already.
package mapper

import (
	"productos/internal/dto"
	"productos/internal/models"
)

// ToProduct builds an unsaved product from a request. ID is left at zero.
func ToProduct(req dto.ProductRequest) models.Product {
	p := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	return p
}

// ToProductResponse copies every wire field, including the ID.
func ToProductResponse(p models.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
	}
}

// ToProductResponseList preserves order. An empty input yields an empty,
// non-nil slice so it encodes as [].
func ToProductResponseList(products []models.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
