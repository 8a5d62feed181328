package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-service/internal/api/dto"
	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/service"
)

// RolesHandler exposes role CRUD.
type RolesHandler struct {
	roles *service.RoleService
}

// NewRolesHandler constructs handler.
func NewRolesHandler(roleService *service.RoleService) *RolesHandler {
	return &RolesHandler{roles: roleService}
}

// Create handles POST /api/v1/roles.
func (h *RolesHandler) Create(c *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	role := &domain.Role{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.roles.Create(c.Context(), role); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewRoleResponse(role))
}

// List handles GET /api/v1/roles.
func (h *RolesHandler) List(c *fiber.Ctx) error {
	roles, err := h.roles.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRoleResponses(roles))
}

// Get handles GET /api/v1/roles/:id.
func (h *RolesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	role, err := h.roles.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRoleResponse(role))
}

// Update handles PUT /api/v1/roles/:id.
func (h *RolesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	role, err := h.roles.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	role.Name = req.Name
	role.Description = req.Description
	if req.Active != nil {
		role.Active = *req.Active
	}
	if err := h.roles.Update(c.Context(), role); err != nil {
		return err
	}
	return c.JSON(dto.NewRoleResponse(role))
}

// Delete handles DELETE /api/v1/roles/:id.
func (h *RolesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.roles.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
