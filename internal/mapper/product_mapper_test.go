package mapper_test

import (
	"testing"

	"productos/internal/dto"
	"productos/internal/mapper"
	"productos/internal/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestToProduct(t *testing.T) {
	req := dto.ProductRequest{
		Name:        "Mouse",
		Description: ptr("Mouse inalámbrico"),
		Price:       ptr(10.0),
		Stock:       ptr(5),
		Category:    models.CategoryElectronica,
	}

	p := mapper.ToProduct(req)

	assert.Zero(t, p.ID)
	assert.Equal(t, "Mouse", p.Name)
	assert.Equal(t, "Mouse inalámbrico", *p.Description)
	assert.Equal(t, 10.0, p.Price)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, models.CategoryElectronica, p.Category)
}

func TestToProductResponse(t *testing.T) {
	p := models.Product{ID: 7, Name: "Remera", Price: 8500.5, Stock: 100, Category: models.CategoryRopa}

	resp := mapper.ToProductResponse(p)

	assert.Equal(t, dto.ProductResponse{ID: 7, Name: "Remera", Price: 8500.5, Stock: 100, Category: models.CategoryRopa}, resp)
}

func TestToProductResponseList(t *testing.T) {
	products := []models.Product{
		{ID: 3, Name: "Pelota", Category: models.CategoryDeportes},
		{ID: 1, Name: "Arroz", Category: models.CategoryAlimentos},
	}

	list := mapper.ToProductResponseList(products)

	assert.Len(t, list, 2)
	assert.Equal(t, uint(3), list[0].ID)
	assert.Equal(t, uint(1), list[1].ID)

	empty := mapper.ToProductResponseList(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
