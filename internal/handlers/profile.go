package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/flashdeck/internal/services"
	"github.com/localnerve/flashdeck/internal/types"
	"github.com/localnerve/flashdeck/internal/utils"
)

// ProfileHandler handles the authenticated user's own profile:
// flashcard listing/creation/removal and the user's grader scores.
type ProfileHandler struct {
	Cards *services.FlashcardService
	Quiz  *services.QuizService
}

// createCardRequest is the flashcard creation body, JSON or form-encoded.
type createCardRequest struct {
	Question string `json:"question" form:"question"`
	Answer   string `json:"answer" form:"answer"`
}

// GetProfile handles GET /my-profile
// @Summary Own profile
// @Description The caller's flashcards plus the scores the caller has earned quizzing on other decks
// @Tags Profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /my-profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	cards, err := h.Cards.List(c.Context(), user.ID)
	if err != nil {
		return err
	}

	myScores, err := h.Quiz.ScoresFor(c.Context(), user.Username)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.Map{
		"user":       user,
		"flashcards": cards,
		"my_scores":  myScores,
	}, fiber.StatusOK)
}

// CreateCard handles POST /my-profile
// @Summary Create a flashcard
// @Tags Profile
// @Accept json
// @Produce json
// @Param flashcard body createCardRequest true "Question and answer"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /my-profile [post]
func (h *ProfileHandler) CreateCard(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createCardRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, types.ErrTypeCardValidation)
	}

	card, err := h.Cards.Create(c.Context(), user.ID, req.Question, req.Answer)
	if err != nil {
		return err
	}

	return utils.MessageResponse(c, "Successfully added a new flashcard!", fiber.Map{
		"flashcard": card,
	}, fiber.StatusCreated)
}

// RemoveCard handles POST /my-profile/remove/:id
// @Summary Delete a flashcard
// @Description Deletes the flashcard; the caller must own it
// @Tags Profile
// @Produce json
// @Param id path int true "Flashcard ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /my-profile/remove/{id} [post]
func (h *ProfileHandler) RemoveCard(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	cardID, err := parseIDParam(c, "id", types.ErrTypeCardValidation)
	if err != nil {
		return err
	}

	if err := h.Cards.Remove(c.Context(), cardID, user.ID); err != nil {
		return err
	}

	return utils.MessageResponse(c, "Removed flashcard!", nil, fiber.StatusOK)
}
