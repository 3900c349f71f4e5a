// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"skillconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyNotifications handles GET /api/notifications
// @Summary List notifications
// @Description List the authenticated user's notifications, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (s *Server) GetMyNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	items, err := s.notificationService.ListForUser(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(items)
}

// GetMyNotificationCount handles GET /api/notifications/count
func (s *Server) GetMyNotificationCount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	count, err := s.notificationService.CountForUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"count": count})
}

// DeleteNotification handles DELETE /api/notifications/:id
// Only the recipient may delete a notification.
func (s *Server) DeleteNotification(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notification, err := s.notificationService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if notification.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You can only delete your own notifications"))
	}

	deleted := s.notificationService.Delete(c.Context(), id)
	return c.JSON(fiber.Map{"deleted": deleted})
}
