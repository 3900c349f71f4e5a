// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"skillconnect/internal/models"
	"skillconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AttachMedia handles POST /api/posts/:id/media
func (s *Server) AttachMedia(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Kind string `json:"kind"`
		URL  string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.mediaService.Attach(c.Context(), service.CreateMediaInput{
		UserID: userID,
		PostID: postID,
		Kind:   models.MediaKind(req.Kind),
		URL:    req.URL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetPostMedia handles GET /api/posts/:id/media
func (s *Server) GetPostMedia(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	items, err := s.mediaService.ListByPost(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(items)
}

// DetachMedia handles DELETE /api/media/:id
func (s *Server) DetachMedia(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.mediaService.Detach(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Media detached"})
}
