package repositories

import (
	"errors"
	"fmt"

	"productos/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository. The
// *gorm.DB must be opened with TranslateError enabled so constraint
// violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindAll retrieves all products ordered by ID.
func (r *GORMProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a single product by its ID.
func (r *GORMProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// FindByCategory retrieves the products of one category ordered by ID.
func (r *GORMProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("categoria = ?", category).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by category %s: %w", category, err)
	}
	return products, nil
}

// Save inserts or updates the product. Save writes every column, zero
// values included.
func (r *GORMProductRepository) Save(product *models.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to save product %q: %w", product.Name, ErrProductConflict)
		}
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// DeleteByID permanently deletes a product by its ID.
func (r *GORMProductRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("product with ID %d is still referenced: %w", id, ErrProductConflict)
		}
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	return nil
}
