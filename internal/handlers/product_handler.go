package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"productos/internal/dto"
	"productos/internal/models"
	"productos/internal/repositories"
	"productos/internal/services"
	"productos/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	log      *logger.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
		log:      log,
	}
}

// RegisterRoutes registers the product routes under /productos.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/productos")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/categoria/:categoria", h.HandleListByCategory)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Patch("/:id/stock", h.HandleUpdateStock)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns every product.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListAll()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProduct returns one product by ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return invalidID(c)
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		return h.serviceError(c, id, err)
	}
	return c.JSON(product)
}

// HandleListByCategory returns the products of one category, possibly none.
func (h *ProductHandler) HandleListByCategory(c *fiber.Ctx) error {
	raw := c.Params("categoria")
	category, err := models.ParseCategory(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(
			fmt.Sprintf("Categoría inválida: %s. Valores permitidos: %s", raw, models.CategoryNames()),
		))
	}

	products, err := h.service.ListByCategory(category)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleCreateProduct validates the body and creates a product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}
	if errs := validationErrors(h.validate, req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationErrorResponse(errs))
	}

	product, err := h.service.Create(req)
	if err != nil {
		if errors.Is(err, repositories.ErrProductConflict) {
			h.log.Warn().Err(err).Msg("product creation conflict")
			return c.Status(fiber.StatusConflict).JSON(dto.NewErrorResponse(
				"Ya existe un producto con datos únicos similares",
			))
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces every field of an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return invalidID(c)
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}
	if errs := validationErrors(h.validate, req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationErrorResponse(errs))
	}

	product, err := h.service.FullUpdate(id, req)
	if err != nil {
		return h.serviceError(c, id, err)
	}
	return c.JSON(product)
}

// HandleUpdateStock changes only the stock of an existing product.
func (h *ProductHandler) HandleUpdateStock(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return invalidID(c)
	}

	var req dto.StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}
	if errs := validationErrors(h.validate, req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationErrorResponse(errs))
	}

	product, err := h.service.PatchStock(id, req)
	if err != nil {
		return h.serviceError(c, id, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct permanently removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrProductConflict) {
			h.log.Warn().Err(err).Uint("id", id).Msg("product delete blocked")
			return c.Status(fiber.StatusConflict).JSON(dto.NewErrorResponse(
				fmt.Sprintf("No se puede eliminar el producto con ID: %d porque tiene referencias asociadas", id),
			))
		}
		return h.serviceError(c, id, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// productID parses the :id path parameter as a positive integer.
func productID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(
		"El ID proporcionado no tiene un formato válido",
	))
}

func (h *ProductHandler) invalidBody(c *fiber.Ctx, err error) error {
	h.log.Debug().Err(err).Str("path", c.Path()).Msg("error parsing request body")
	return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(
		"El cuerpo de la solicitud no es válido",
	))
}

// serviceError maps not-found and conflict errors to 404 and 409. Anything
// else goes to the app error handler.
func (h *ProductHandler) serviceError(c *fiber.Ctx, id uint, err error) error {
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewErrorResponse(
			fmt.Sprintf("Producto no encontrado con ID: %d", id),
		))
	case errors.Is(err, repositories.ErrProductConflict):
		h.log.Warn().Err(err).Uint("id", id).Msg("product conflict")
		return c.Status(fiber.StatusConflict).JSON(dto.NewErrorResponse(
			fmt.Sprintf("Conflicto al guardar el producto con ID: %d", id),
		))
	default:
		return err
	}
}
