package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/service"
)

// ClassesHandler exposes class management endpoints.
type ClassesHandler struct {
	classes *service.ClassService
}

// NewClassesHandler constructs handler.
func NewClassesHandler(classes *service.ClassService) *ClassesHandler {
	return &ClassesHandler{classes: classes}
}

// Create handles POST /api/v1/classes.
func (h *ClassesHandler) Create(c *fiber.Ctx) error {
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	class := &domain.Class{
		Name:              req.Name,
		GradeLevel:        req.GradeLevel,
		HomeroomTeacherID: req.HomeroomTeacherID,
	}
	if err := h.classes.CreateClass(c.Context(), class); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": class})
}

// List handles GET /api/v1/classes.
func (h *ClassesHandler) List(c *fiber.Ctx) error {
	classes, err := h.classes.ListClasses(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": classes})
}

// Get handles GET /api/v1/classes/:id.
func (h *ClassesHandler) Get(c *fiber.Ctx) error {
	class, err := h.classes.GetClass(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": class})
}

// Roster handles GET /api/v1/classes/:id/roster.
func (h *ClassesHandler) Roster(c *fiber.Ctx) error {
	entries, err := h.classes.Roster(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": entries})
}

// AssignStudent handles POST /api/v1/classes/:id/students.
func (h *ClassesHandler) AssignStudent(c *fiber.Ctx) error {
	var req dto.ClassAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	if err := h.classes.AssignStudent(c.Context(), req.StudentID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "assigned"}})
}

// Update handles PUT /api/v1/classes/:id.
func (h *ClassesHandler) Update(c *fiber.Ctx) error {
	var req dto.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	class, err := h.classes.GetClass(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	class.Name = req.Name
	class.GradeLevel = req.GradeLevel
	class.HomeroomTeacherID = req.HomeroomTeacherID
	if err := h.classes.UpdateClass(c.Context(), class); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": class})
}

// Delete handles DELETE /api/v1/classes/:id.
func (h *ClassesHandler) Delete(c *fiber.Ctx) error {
	if err := h.classes.DeleteClass(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
