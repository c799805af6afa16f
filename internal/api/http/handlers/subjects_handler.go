package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/service"
)

// SubjectsHandler exposes subject catalog endpoints.
type SubjectsHandler struct {
	classes *service.ClassService
}

// NewSubjectsHandler constructs handler.
func NewSubjectsHandler(classes *service.ClassService) *SubjectsHandler {
	return &SubjectsHandler{classes: classes}
}

// Create handles POST /api/v1/subjects.
func (h *SubjectsHandler) Create(c *fiber.Ctx) error {
	var req dto.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	subject := &domain.Subject{Name: req.Name, Code: req.Code}
	if err := h.classes.CreateSubject(c.Context(), subject); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": subject})
}

// List handles GET /api/v1/subjects.
func (h *SubjectsHandler) List(c *fiber.Ctx) error {
	subjects, err := h.classes.ListSubjects(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": subjects})
}

// Get handles GET /api/v1/subjects/:id.
func (h *SubjectsHandler) Get(c *fiber.Ctx) error {
	subject, err := h.classes.GetSubject(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": subject})
}

// Update handles PUT /api/v1/subjects/:id.
func (h *SubjectsHandler) Update(c *fiber.Ctx) error {
	var req dto.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	subject, err := h.classes.GetSubject(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	subject.Name = req.Name
	subject.Code = req.Code
	if err := h.classes.UpdateSubject(c.Context(), subject); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": subject})
}

// Delete handles DELETE /api/v1/subjects/:id.
func (h *SubjectsHandler) Delete(c *fiber.Ctx) error {
	if err := h.classes.DeleteSubject(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
