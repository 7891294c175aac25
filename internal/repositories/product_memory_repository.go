package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"productos/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// FindAll returns all products ordered by ID.
func (r *MemoryProductRepository) FindAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(models.Product) bool { return true }), nil
}

// FindByID returns a product by its ID.
func (r *MemoryProductRepository) FindByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// FindByCategory returns the products of one category ordered by ID.
func (r *MemoryProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(p models.Product) bool { return p.Category == category }), nil
}

// Save adds a new product or replaces an existing one.
func (r *MemoryProductRepository) Save(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

// DeleteByID removes a product by its ID.
func (r *MemoryProductRepository) DeleteByID(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}

// sorted must be called with r.mu held.
func (r *MemoryProductRepository) sorted(keep func(models.Product) bool) []models.Product {
	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if keep(p) {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
