// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// LikePost handles POST /api/posts/:id/like
// @Summary Like a post
// @Description Like a post. Repeating the request is a no-op that returns the existing like.
// @Tags likes
// @Produce json
// @Param id path int true "Post ID"
// @Success 201 {object} models.Like
// @Failure 404 {object} object{error=string}
// @Router /posts/{id}/like [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.Like(c.Context(), userID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	removed, err := s.likeService.Unlike(c.Context(), userID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"removed": removed})
}

// GetLikeStatus handles GET /api/posts/:id/like/status
func (s *Server) GetLikeStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, err := s.likeService.HasLiked(c.Context(), userID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"liked": liked})
}

// GetPostLikes handles GET /api/posts/:id/likes
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	likes, err := s.likeService.ListByPost(c.Context(), postID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	count, err := s.likeService.CountForPost(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"likes": likes,
		"count": count,
	})
}

// GetMyLikes handles GET /api/users/me/likes
func (s *Server) GetMyLikes(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	likes, err := s.likeService.ListByUser(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(likes)
}
