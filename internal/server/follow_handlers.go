// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"time"

	"skillconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
// @Summary Follow a user
// @Description Create a follow edge from the authenticated user to the target user
// @Tags follows
// @Produce json
// @Param id path int true "Target user ID"
// @Success 200 {object} object{status=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id}/follow [post]
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, err := s.followService.Follow(ctx, userID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if status == models.FollowStatusFollowed {
		// Best-effort realtime ping so the target's follower count updates live.
		if follower, ferr := s.userRepo.GetByID(ctx, userID); ferr == nil {
			s.publishUserEvent(targetID, EventFollowerAdded, map[string]interface{}{
				"follower":   userSummary(*follower),
				"created_at": time.Now().UTC().Format(time.RFC3339Nano),
			})
		}
	}

	return c.JSON(fiber.Map{"status": status})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, err := s.followService.Unfollow(ctx, userID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if status == models.FollowStatusUnfollowed {
		s.publishUserEvent(targetID, EventFollowerRemoved, map[string]interface{}{
			"follower_id": userID,
			"created_at":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	}

	return c.JSON(fiber.Map{"status": status})
}

// GetFollowStatus handles GET /api/users/:id/follow/status
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.IsFollowing(c.Context(), userID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	followers, err := s.followService.Followers(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(followers)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	following, err := s.followService.Following(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(following)
}

// GetFollowCounts handles GET /api/users/:id/follow-counts
func (s *Server) GetFollowCounts(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.followService.FollowerCount(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	following, err := s.followService.FollowingCount(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"followers": followers,
		"following": following,
	})
}
