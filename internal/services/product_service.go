package services

import (
	"errors"
	"fmt"

	"productos/internal/dto"
	"productos/internal/mapper"
	"productos/internal/models"
	"productos/internal/repositories"
	"productos/pkg/logger"
)

// ErrStockRequired is returned by PatchStock when the request carries no stock.
var ErrStockRequired = errors.New("stock is required")

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	log       *logger.Logger
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case no events are published.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher, log *logger.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Create stores a new product and returns it with its assigned ID.
func (s *ProductService) Create(req dto.ProductRequest) (dto.ProductResponse, error) {
	product := mapper.ToProduct(req)
	if err := s.repo.Save(&product); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("failed to create product: %w", err)
	}

	resp := mapper.ToProductResponse(product)
	s.publish(EventProductCreated, product.ID, &resp)
	return resp, nil
}

// ListAll retrieves all products.
func (s *ProductService) ListAll() ([]dto.ProductResponse, error) {
	products, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return mapper.ToProductResponseList(products), nil
}

// GetByID retrieves a single product. A missing product yields an error
// wrapping repositories.ErrProductNotFound.
func (s *ProductService) GetByID(id uint) (dto.ProductResponse, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return mapper.ToProductResponse(*product), nil
}

// ListByCategory retrieves the products of one category. No match is not an error.
func (s *ProductService) ListByCategory(category models.Category) ([]dto.ProductResponse, error) {
	products, err := s.repo.FindByCategory(category)
	if err != nil {
		return nil, err
	}
	return mapper.ToProductResponseList(products), nil
}

// FullUpdate replaces every field of an existing product. The ID always
// comes from the path, never from the body.
func (s *ProductService) FullUpdate(id uint, req dto.ProductRequest) (dto.ProductResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	product := mapper.ToProduct(req)
	product.ID = id
	product.CreatedAt = existing.CreatedAt
	if err := s.repo.Save(&product); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("failed to update product %d: %w", id, err)
	}

	resp := mapper.ToProductResponse(product)
	s.publish(EventProductUpdated, id, &resp)
	return resp, nil
}

// PatchStock changes only the stock of an existing product.
func (s *ProductService) PatchStock(id uint, req dto.StockUpdateRequest) (dto.ProductResponse, error) {
	if req.Stock == nil {
		return dto.ProductResponse{}, ErrStockRequired
	}

	product, err := s.repo.FindByID(id)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	product.Stock = *req.Stock
	if err := s.repo.Save(product); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("failed to update stock of product %d: %w", id, err)
	}

	resp := mapper.ToProductResponse(*product)
	s.publish(EventStockUpdated, id, &resp)
	return resp, nil
}

// Delete permanently removes a product. The error wraps either
// repositories.ErrProductNotFound or repositories.ErrProductConflict.
func (s *ProductService) Delete(id uint) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	s.publish(EventProductDeleted, id, nil)
	return nil
}
