package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/service"
)

// GradesHandler exposes grade recording endpoints.
type GradesHandler struct {
	grades *service.GradeService
}

// NewGradesHandler constructs handler.
func NewGradesHandler(grades *service.GradeService) *GradesHandler {
	return &GradesHandler{grades: grades}
}

// Record handles POST /api/v1/grades.
func (h *GradesHandler) Record(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	grade := &domain.Grade{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Term:      req.Term,
		Score:     req.Score,
		Comment:   req.Comment,
	}
	if err := h.grades.Record(c.Context(), actor, grade); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": grade})
}

// Get handles GET /api/v1/grades/:id.
func (h *GradesHandler) Get(c *fiber.Ctx) error {
	grade, err := h.grades.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": grade})
}

// ListByStudent handles GET /api/v1/students/:id/grades.
func (h *GradesHandler) ListByStudent(c *fiber.Ctx) error {
	grades, err := h.grades.ListByStudent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": grades})
}

// ListBySubject handles GET /api/v1/subjects/:id/grades?term=.
func (h *GradesHandler) ListBySubject(c *fiber.Ctx) error {
	term := c.Query("term")
	if term == "" {
		return dto.ValidationError([]dto.FieldViolation{{Field: "term", Constraint: "required"}})
	}

	grades, err := h.grades.ListBySubject(c.Context(), c.Params("id"), term)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": grades})
}

// Update handles PUT /api/v1/grades/:id.
func (h *GradesHandler) Update(c *fiber.Ctx) error {
	var req dto.GradeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	grade, err := h.grades.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	grade.Score = req.Score
	grade.Comment = req.Comment
	if err := h.grades.Update(c.Context(), grade); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": grade})
}

// Delete handles DELETE /api/v1/grades/:id.
func (h *GradesHandler) Delete(c *fiber.Ctx) error {
	if err := h.grades.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
