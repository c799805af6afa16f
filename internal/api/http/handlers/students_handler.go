package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/service"
)

// StudentsHandler exposes student enrollment endpoints.
type StudentsHandler struct {
	students *service.StudentService
}

// NewStudentsHandler constructs handler.
func NewStudentsHandler(students *service.StudentService) *StudentsHandler {
	return &StudentsHandler{students: students}
}

// Enroll handles POST /api/v1/students.
func (h *StudentsHandler) Enroll(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.StudentEnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	student, err := h.students.Enroll(c.Context(), actor, service.EnrollInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		AdmissionNo: req.AdmissionNo,
		ClassID:     req.ClassID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": student})
}

// List handles GET /api/v1/students.
func (h *StudentsHandler) List(c *fiber.Ctx) error {
	students, err := h.students.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": students})
}

// Get handles GET /api/v1/students/:id.
func (h *StudentsHandler) Get(c *fiber.Ctx) error {
	student, err := h.students.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": student})
}

// Update handles PUT /api/v1/students/:id.
func (h *StudentsHandler) Update(c *fiber.Ctx) error {
	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	student, err := h.students.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	student.AdmissionNo = req.AdmissionNo
	student.ClassID = req.ClassID
	if err := h.students.Update(c.Context(), student); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": student})
}

// Delete handles DELETE /api/v1/students/:id.
func (h *StudentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.students.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// LinkParent handles POST /api/v1/students/:id/parents.
func (h *StudentsHandler) LinkParent(c *fiber.Ctx) error {
	var req dto.ParentLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	link, err := h.students.LinkParent(c.Context(), req.ParentID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": link})
}

// UnlinkParent handles DELETE /api/v1/students/:id/parents/:parentId.
func (h *StudentsHandler) UnlinkParent(c *fiber.Ctx) error {
	if err := h.students.UnlinkParent(c.Context(), c.Params("parentId"), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
