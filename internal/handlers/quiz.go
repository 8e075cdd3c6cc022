package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/flashdeck/internal/services"
	"github.com/localnerve/flashdeck/internal/store"
	"github.com/localnerve/flashdeck/internal/types"
	"github.com/localnerve/flashdeck/internal/utils"
)

// QuizHandler handles quiz sampling and score submission
type QuizHandler struct {
	Quiz *services.QuizService
}

// submitScoreRequest is the quiz submission body. Attempt is the token
// returned by the quiz start and is optional for legacy clients.
type submitScoreRequest struct {
	Score   int    `json:"score" form:"score"`
	Attempt string `json:"attempt" form:"attempt"`
}

// Outcome notices, matching the legacy quiz surface.
var outcomeMessages = map[string]string{
	store.ScoreCreated:   "New score added!",
	store.ScoreImproved:  "Score updated! New best!",
	store.ScoreUnchanged: "Not your best attempt. Try harder!",
}

// StartQuiz handles GET /quiz/:id
// @Summary Start a quiz on a user's deck
// @Description Samples 10 random cards from the target deck and records the attempt
// @Tags Quiz
// @Produce json
// @Param id path int true "Deck owner's user ID"
// @Success 200 {object} services.Quiz
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /quiz/{id} [get]
func (h *QuizHandler) StartQuiz(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	ownerID, err := parseIDParam(c, "id", types.ErrTypeUserNotFound)
	if err != nil {
		return err
	}

	quiz, err := h.Quiz.Start(c.Context(), ownerID, user.Username)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, quiz, fiber.StatusOK)
}

// SubmitScore handles POST /quiz/:id
// @Summary Submit a quiz score
// @Description Records the score and keeps the best per (owner, grader) pair
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path int true "Deck owner's user ID"
// @Param submission body submitScoreRequest true "Score"
// @Success 200 {object} utils.MessageResponseStruct
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /quiz/{id} [post]
func (h *QuizHandler) SubmitScore(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	ownerID, err := parseIDParam(c, "id", types.ErrTypeUserNotFound)
	if err != nil {
		return err
	}

	var req submitScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, types.ErrTypeScoreValidation)
	}

	outcome, score, err := h.Quiz.SubmitScore(c.Context(), ownerID, user.Username, req.Score)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if outcome == store.ScoreCreated {
		status = fiber.StatusCreated
	}

	return utils.MessageResponse(c, outcomeMessages[outcome], fiber.Map{
		"outcome": outcome,
		"score":   score,
	}, status)
}
