package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore-service/internal/api/dto"
	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/service"
)

// PartnersHandler exposes business partner CRUD.
type PartnersHandler struct {
	partners *service.PartnerService
}

// NewPartnersHandler constructs handler.
func NewPartnersHandler(partnerService *service.PartnerService) *PartnersHandler {
	return &PartnersHandler{partners: partnerService}
}

// Create handles POST /api/v1/partners.
func (h *PartnersHandler) Create(c *fiber.Ctx) error {
	var req dto.PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Value == "" || req.Name == "" || req.GroupID == 0 {
		return fiber.NewError(http.StatusBadRequest, "value, name and group_id required")
	}

	partner := &domain.Partner{
		Value:       req.Value,
		Name:        req.Name,
		Description: req.Description,
		Customer:    req.Customer,
		Author:      req.Author,
		Employee:    req.Employee,
		ProfileURL:  req.ProfileURL,
		Gender:      domain.Gender(req.Gender),
		GroupID:     req.GroupID,
	}
	if err := h.partners.Create(c.Context(), partner); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPartnerResponse(partner))
}

// List handles GET /api/v1/partners.
func (h *PartnersHandler) List(c *fiber.Ctx) error {
	partners, err := h.partners.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPartnerResponses(partners))
}

// Get handles GET /api/v1/partners/:id.
func (h *PartnersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	partner, err := h.partners.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPartnerResponse(partner))
}

// Search handles GET /api/v1/partners/search?field=&value=.
func (h *PartnersHandler) Search(c *fiber.Ctx) error {
	field, value, err := parseSearchQuery(c)
	if err != nil {
		return err
	}
	partners, err := h.partners.Search(c.Context(), field, value)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPartnerResponses(partners))
}

// Update handles PUT /api/v1/partners/:id.
func (h *PartnersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	partner, err := h.partners.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	partner.Value = req.Value
	partner.Name = req.Name
	partner.Description = req.Description
	partner.Customer = req.Customer
	partner.Author = req.Author
	partner.Employee = req.Employee
	if req.ProfileURL != "" {
		partner.ProfileURL = req.ProfileURL
	}
	if req.Gender != "" {
		partner.Gender = domain.Gender(req.Gender)
	}
	if req.GroupID != 0 {
		partner.GroupID = req.GroupID
	}
	if req.Active != nil {
		partner.Active = *req.Active
	}
	if err := h.partners.Update(c.Context(), partner); err != nil {
		return err
	}
	return c.JSON(dto.NewPartnerResponse(partner))
}

// Delete handles DELETE /api/v1/partners/:id.
func (h *PartnersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.partners.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
