package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-service/internal/api/dto"
	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/service"
)

// CategoriesHandler exposes product category CRUD.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categoryService *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categoryService}
}

// Create handles POST /api/v1/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Value == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "value and name required")
	}

	category := &domain.ProductCategory{
		Value:       req.Value,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.categories.Create(c.Context(), category); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCategoryResponse(category))
}

// List handles GET /api/v1/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCategoryResponses(categories))
}

// Get handles GET /api/v1/categories/:id.
func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	category, err := h.categories.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCategoryResponse(category))
}

// Search handles GET /api/v1/categories/search?field=&value=.
func (h *CategoriesHandler) Search(c *fiber.Ctx) error {
	field, value, err := parseSearchQuery(c)
	if err != nil {
		return err
	}
	categories, err := h.categories.Search(c.Context(), field, value)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCategoryResponses(categories))
}

// Update handles PUT /api/v1/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	category, err := h.categories.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	category.Value = req.Value
	category.Name = req.Name
	category.Description = req.Description
	if req.Active != nil {
		category.Active = *req.Active
	}
	if err := h.categories.Update(c.Context(), category); err != nil {
		return err
	}
	return c.JSON(dto.NewCategoryResponse(category))
}

// Delete handles DELETE /api/v1/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.categories.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func parseSearchQuery(c *fiber.Ctx) (string, string, error) {
	field := c.Query("field")
	value := c.Query("value")
	if field == "" || value == "" {
		return "", "", fiber.NewError(http.StatusBadRequest, "field and value required")
	}
	return field, value, nil
}
