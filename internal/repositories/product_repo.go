package repositories

import (
	"errors"

	"productos/internal/models"
)

var (
	// ErrProductNotFound is returned when no product has the requested ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductConflict is returned when a write or delete collides with a
	// uniqueness rule or with rows that reference the product.
	ErrProductConflict = errors.New("product conflict")
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	FindAll() ([]models.Product, error)
	FindByID(id uint) (*models.Product, error)
	FindByCategory(category models.Category) ([]models.Product, error)
	// Save inserts the product when its ID is zero and overwrites the stored
	// row otherwise. The argument holds the persisted state on return.
	Save(product *models.Product) error
	DeleteByID(id uint) error
}
