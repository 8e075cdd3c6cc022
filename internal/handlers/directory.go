package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/flashdeck/internal/services"
	"github.com/localnerve/flashdeck/internal/types"
	"github.com/localnerve/flashdeck/internal/utils"
)

// DirectoryHandler handles the browse surface
type DirectoryHandler struct {
	Directory *services.DirectoryService
}

// ListUsers handles GET /users
// @Summary List other users
// @Tags Directory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *DirectoryHandler) ListUsers(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	others, err := h.Directory.ListOtherUsers(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"users": others,
	}, fiber.StatusOK)
}

// GetUserProfile handles GET /users/:id
// @Summary View another user's profile
// @Description The target's flashcards and the scores recorded against the target's deck
// @Tags Directory
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} services.UserProfile
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *DirectoryHandler) GetUserProfile(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	targetID, err := parseIDParam(c, "id", types.ErrTypeUserNotFound)
	if err != nil {
		return err
	}

	profile, err := h.Directory.ViewUserProfile(c.Context(), targetID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, profile, fiber.StatusOK)
}
