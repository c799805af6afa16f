package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/service"
)

// AttendanceHandler exposes attendance endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// Mark handles POST /api/v1/attendance.
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.AttendanceMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	record := &domain.AttendanceRecord{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Date:      req.ParsedDate(),
		Status:    req.Status,
	}
	if err := h.attendance.Mark(c.Context(), actor, record); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": record})
}

// ListByClass handles GET /api/v1/classes/:id/attendance?date=YYYY-MM-DD.
func (h *AttendanceHandler) ListByClass(c *fiber.Ctx) error {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return dto.ValidationError([]dto.FieldViolation{{Field: "date", Constraint: "must be YYYY-MM-DD"}})
	}

	records, err := h.attendance.ListByClassDate(c.Context(), c.Params("id"), date)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": records})
}

// ListByStudent handles GET /api/v1/students/:id/attendance.
func (h *AttendanceHandler) ListByStudent(c *fiber.Ctx) error {
	records, err := h.attendance.ListByStudent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": records})
}

// Delete handles DELETE /api/v1/attendance/:id.
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.attendance.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
