package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/service"
)

// ParentsHandler exposes guardian directory endpoints.
type ParentsHandler struct {
	directory *service.DirectoryService
}

// NewParentsHandler constructs handler.
func NewParentsHandler(directory *service.DirectoryService) *ParentsHandler {
	return &ParentsHandler{directory: directory}
}

// Create handles POST /api/v1/parents.
func (h *ParentsHandler) Create(c *fiber.Ctx) error {
	var req dto.ParentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if violations := req.Validate(); len(violations) > 0 {
		return dto.ValidationError(violations)
	}

	parent, err := h.directory.CreateParent(c.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": parent})
}

// List handles GET /api/v1/parents.
func (h *ParentsHandler) List(c *fiber.Ctx) error {
	parents, err := h.directory.ListParents(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": parents})
}

// Get handles GET /api/v1/parents/:id.
func (h *ParentsHandler) Get(c *fiber.Ctx) error {
	parent, err := h.directory.GetParent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": parent})
}

// Students handles GET /api/v1/parents/:id/students.
func (h *ParentsHandler) Students(c *fiber.Ctx) error {
	ids, err := h.directory.ParentStudentIDs(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ids})
}

// Update handles PUT /api/v1/parents/:id.
func (h *ParentsHandler) Update(c *fiber.Ctx) error {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if req.Phone == "" {
		return dto.ValidationError([]dto.FieldViolation{{Field: "phone", Constraint: "required"}})
	}

	parent, err := h.directory.GetParent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	parent.Phone = req.Phone
	if err := h.directory.UpdateParent(c.Context(), parent); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": parent})
}

// Delete handles DELETE /api/v1/parents/:id.
func (h *ParentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.directory.DeleteParent(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
