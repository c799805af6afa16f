package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/service"
)

// MaterialsHandler exposes teaching material endpoints.
type MaterialsHandler struct {
	materials *service.MaterialService
}

// NewMaterialsHandler constructs handler.
func NewMaterialsHandler(materials *service.MaterialService) *MaterialsHandler {
	return &MaterialsHandler{materials: materials}
}

// Upload handles POST /api/v1/materials.
func (h *MaterialsHandler) Upload(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.MaterialUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	material := &domain.Material{
		SubjectID:   req.SubjectID,
		ClassID:     req.ClassID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.materials.Upload(c.Context(), actor, material); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": material})
}

// Get handles GET /api/v1/materials/:id.
func (h *MaterialsHandler) Get(c *fiber.Ctx) error {
	material, err := h.materials.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": material})
}

// ListBySubject handles GET /api/v1/subjects/:id/materials.
func (h *MaterialsHandler) ListBySubject(c *fiber.Ctx) error {
	materials, err := h.materials.ListBySubject(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": materials})
}

// Update handles PUT /api/v1/materials/:id.
func (h *MaterialsHandler) Update(c *fiber.Ctx) error {
	var req dto.MaterialUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	material, err := h.materials.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	material.Title = req.Title
	material.Description = req.Description
	material.ClassID = req.ClassID
	if err := h.materials.Update(c.Context(), material); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": material})
}

// Delete handles DELETE /api/v1/materials/:id.
func (h *MaterialsHandler) Delete(c *fiber.Ctx) error {
	if err := h.materials.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
