package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/localnerve/flashdeck/internal/services"
	"github.com/localnerve/flashdeck/internal/utils"
)

// AuthHandler handles signup, login and logout
type AuthHandler struct {
	Auth     *services.AuthService
	Sessions *session.Store
}

// credentialsRequest is the signup/login body, JSON or form-encoded.
type credentialsRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// GetSignup handles GET /signup
// @Summary Signup page descriptor
// @Description Describes the signup form; already-authenticated callers are redirected to their profile
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 303
// @Router /signup [get]
func (h *AuthHandler) GetSignup(c *fiber.Ctx) error {
	if _, ok := sessionUserID(c, h.Sessions); ok {
		return c.Redirect("/my-profile", fiber.StatusSeeOther)
	}
	return utils.SuccessResponse(c, fiber.Map{
		"page":   "signup",
		"fields": []string{"username", "password"},
	}, fiber.StatusOK)
}

// Signup handles POST /signup
// @Summary Create an account
// @Description Creates a user and logs it in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Credentials"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	if _, ok := sessionUserID(c, h.Sessions); ok {
		return c.Redirect("/my-profile", fiber.StatusSeeOther)
	}

	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, "auth.validation")
	}

	user, err := h.Auth.SignUp(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	if err := bindSession(c, h.Sessions, user.ID); err != nil {
		return err
	}

	return utils.MessageResponse(c, "You have successfully signed up!", fiber.Map{
		"user": user,
	}, fiber.StatusCreated)
}

// GetLogin handles GET /login
// @Summary Login page descriptor
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 303
// @Router /login [get]
func (h *AuthHandler) GetLogin(c *fiber.Ctx) error {
	if _, ok := sessionUserID(c, h.Sessions); ok {
		return c.Redirect("/my-profile", fiber.StatusSeeOther)
	}
	return utils.SuccessResponse(c, fiber.Map{
		"page":   "login",
		"fields": []string{"username", "password"},
	}, fiber.StatusOK)
}

// Login handles POST /login
// @Summary Authenticate
// @Description Verifies credentials and binds the session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Credentials"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if _, ok := sessionUserID(c, h.Sessions); ok {
		return c.Redirect("/my-profile", fiber.StatusSeeOther)
	}

	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Malformed request body", fiber.StatusBadRequest, "auth.validation")
	}

	user, err := h.Auth.LogIn(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	if err := bindSession(c, h.Sessions, user.ID); err != nil {
		return err
	}

	return utils.MessageResponse(c, "Login successful!", fiber.Map{
		"user": user,
	}, fiber.StatusOK)
}

// Logout handles GET /logout
// @Summary Destroy the session
// @Description Destroys the current session; repeat calls succeed
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Router /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := destroySession(c, h.Sessions); err != nil {
		return err
	}
	return utils.MessageResponse(c, "Successfully logged-out!", nil, fiber.StatusOK)
}
