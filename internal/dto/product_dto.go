package dto

import "productos/internal/models"

// ProductRequest is the body of POST and PUT requests. Pointer fields tell a
// missing value apart from a zero one.
type ProductRequest struct {
	Name        string          `json:"nombre" validate:"notblank,min=3,max=100"`
	Description *string         `json:"descripcion" validate:"omitempty,max=500"`
	Price       *float64        `json:"precio" validate:"required,gte=0.01"`
	Stock       *int            `json:"stock" validate:"required,gte=0"`
	Category    models.Category `json:"categoria" validate:"required,categoria"`
}

// StockUpdateRequest is the body of PATCH /:id/stock.
type StockUpdateRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// ProductResponse is the wire representation of a stored product.
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"nombre"`
	Description *string         `json:"descripcion"`
	Price       float64         `json:"precio"`
	Stock       int             `json:"stock"`
	Category    models.Category `json:"categoria"`
}
