package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-service/internal/api/dto"
	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/service"
)

// PartnerGroupsHandler exposes partner group CRUD.
type PartnerGroupsHandler struct {
	groups *service.PartnerGroupService
}

// NewPartnerGroupsHandler constructs handler.
func NewPartnerGroupsHandler(groupService *service.PartnerGroupService) *PartnerGroupsHandler {
	return &PartnerGroupsHandler{groups: groupService}
}

// Create handles POST /api/v1/partner-groups.
func (h *PartnerGroupsHandler) Create(c *fiber.Ctx) error {
	var req dto.PartnerGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Value == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "value and name required")
	}

	group := &domain.PartnerGroup{
		Value:       req.Value,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.groups.Create(c.Context(), group); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPartnerGroupResponse(group))
}

// List handles GET /api/v1/partner-groups.
func (h *PartnerGroupsHandler) List(c *fiber.Ctx) error {
	groups, err := h.groups.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPartnerGroupResponses(groups))
}

// Get handles GET /api/v1/partner-groups/:id.
func (h *PartnerGroupsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	group, err := h.groups.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPartnerGroupResponse(group))
}

// Search handles GET /api/v1/partner-groups/search?field=&value=.
func (h *PartnerGroupsHandler) Search(c *fiber.Ctx) error {
	field, value, err := parseSearchQuery(c)
	if err != nil {
		return err
	}
	groups, err := h.groups.Search(c.Context(), field, value)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPartnerGroupResponses(groups))
}

// Update handles PUT /api/v1/partner-groups/:id.
func (h *PartnerGroupsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.PartnerGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	group, err := h.groups.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	group.Value = req.Value
	group.Name = req.Name
	group.Description = req.Description
	if req.Active != nil {
		group.Active = *req.Active
	}
	if err := h.groups.Update(c.Context(), group); err != nil {
		return err
	}
	return c.JSON(dto.NewPartnerGroupResponse(group))
}

// Delete handles DELETE /api/v1/partner-groups/:id.
func (h *PartnerGroupsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.groups.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
