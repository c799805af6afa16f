package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/service"
)

// TeachersHandler exposes teacher directory endpoints.
type TeachersHandler struct {
	directory *service.DirectoryService
}

// NewTeachersHandler constructs handler.
func NewTeachersHandler(directory *service.DirectoryService) *TeachersHandler {
	return &TeachersHandler{directory: directory}
}

// Create handles POST /api/v1/teachers.
func (h *TeachersHandler) Create(c *fiber.Ctx) error {
	var req dto.TeacherCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	teacher, err := h.directory.CreateTeacher(c.Context(), req.Name, req.Email, req.Password, req.SubjectID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": teacher})
}

// List handles GET /api/v1/teachers.
func (h *TeachersHandler) List(c *fiber.Ctx) error {
	teachers, err := h.directory.ListTeachers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": teachers})
}

// Get handles GET /api/v1/teachers/:id.
func (h *TeachersHandler) Get(c *fiber.Ctx) error {
	teacher, err := h.directory.GetTeacher(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": teacher})
}

// Update handles PUT /api/v1/teachers/:id.
func (h *TeachersHandler) Update(c *fiber.Ctx) error {
	var req struct {
		SubjectID *string `json:"subject_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}

	teacher, err := h.directory.GetTeacher(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	teacher.SubjectID = req.SubjectID
	if err := h.directory.UpdateTeacher(c.Context(), teacher); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": teacher})
}

// Delete handles DELETE /api/v1/teachers/:id.
func (h *TeachersHandler) Delete(c *fiber.Ctx) error {
	if err := h.directory.DeleteTeacher(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
