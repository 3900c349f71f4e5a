// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"skillconnect/internal/models"
	"skillconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateProgressUpdate handles POST /api/progress
func (s *Server) CreateProgressUpdate(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Template string `json:"template"`
		IsPublic *bool  `json:"is_public"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	update, err := s.progressService.Create(c.Context(), service.CreateProgressInput{
		UserID:   userID,
		Title:    req.Title,
		Content:  req.Content,
		Template: req.Template,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(update)
}

// GetProgressUpdate handles GET /api/progress/:id
func (s *Server) GetProgressUpdate(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	update, err := s.progressService.Get(c.Context(), id, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(update)
}

// GetPublicProgress handles GET /api/progress
func (s *Server) GetPublicProgress(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	updates, err := s.progressService.ListPublic(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(updates)
}

// GetUserProgress handles GET /api/users/:id/progress
func (s *Server) GetUserProgress(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)
	viewerID, _ := s.optionalUserID(c)

	updates, err := s.progressService.ListForUser(c.Context(), id, viewerID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(updates)
}

// UpdateProgressUpdate handles PUT /api/progress/:id
func (s *Server) UpdateProgressUpdate(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Template string `json:"template"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	update, err := s.progressService.Update(c.Context(), service.UpdateProgressInput{
		UserID:   userID,
		UpdateID: id,
		Title:    req.Title,
		Content:  req.Content,
		Template: req.Template,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(update)
}

// SetProgressVisibility handles PATCH /api/progress/:id/visibility
func (s *Server) SetProgressVisibility(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		IsPublic *bool `json:"is_public"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsPublic == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("is_public is required"))
	}

	update, err := s.progressService.SetVisibility(c.Context(), userID, id, *req.IsPublic)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(update)
}

// DeleteProgressUpdate handles DELETE /api/progress/:id
func (s *Server) DeleteProgressUpdate(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.progressService.Delete(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Progress update deleted"})
}
