package handlers

import (
	"errors"
	"strconv"

	"product-backend/internal/services"
	"product-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	service services.ProductService
	logger  *logrus.Logger
}

func NewProductHandler(service services.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product with its default-language content and auto-translated dictionary entries for every requested language
// @Tags products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product content and target language codes"
// @Success 201 {object} utils.APIResponse "Product created successfully with translations"
// @Failure 400 {object} utils.APIResponse "Validation failure or unknown language code"
// @Failure 500 {object} utils.APIResponse "Translation or storage failure"
// @Router /product [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	ctx := c.Context()

	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if violations := req.Validate(); len(violations) > 0 {
		return utils.ValidationErrorResponse(c, violations)
	}

	result, err := h.service.Create(ctx, *req.Name, *req.Description, *req.Language)
	if err != nil {
		var bizErr *services.BusinessError
		if errors.As(err, &bizErr) {
			return utils.BadRequestResponse(c, bizErr.Message)
		}
		h.logger.WithError(err).Error("Failed to create product")
		return utils.InternalErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated,
		"Product created successfully with translations.", result)
}

// GetProducts godoc
// @Summary Search products
// @Description Case-insensitive substring search over translated product names; every match returns the full set of its product's translations
// @Tags products
// @Accept json
// @Produce json
// @Param product_name query string false "Filter by product name (partial match)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} utils.PaginatedResponse "Products fetched successfully with translations"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /product [get]
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	ctx := c.Context()

	nameFilter := c.Query("product_name", "")
	page, _ := strconv.Atoi(c.Query("page", "1"))

	result, err := h.service.Search(ctx, nameFilter, page)
	if err != nil {
		h.logger.WithError(err).Error("Failed to search products")
		return utils.InternalErrorResponse(c, err.Error())
	}

	pagination := utils.Pagination{
		TotalItems:  result.TotalItems,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
	}

	return utils.SuccessWithPaginationResponse(c,
		"Products fetched successfully with translations.", pagination, result.Groups)
}

// GetLanguages godoc
// @Summary List supported languages
// @Description Get the language directory products can be translated into
// @Tags languages
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse "List of languages"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /languages [get]
func (h *ProductHandler) GetLanguages(c *fiber.Ctx) error {
	ctx := c.Context()

	languages, err := h.service.Languages(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list languages")
		return utils.InternalErrorResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Languages fetched successfully.", languages)
}
