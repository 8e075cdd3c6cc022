package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/localnerve/flashdeck/internal/services"
	"github.com/localnerve/flashdeck/internal/types"
)

// Session keys and context locals.
const (
	SessionUserKey = "user_id"
	LocalsUserKey  = "user"
)

// AuthUser resolves the session to a user record and stores it in the
// request context. Requests without a valid session get a 401, the
// JSON equivalent of the legacy redirect-to-login.
func AuthUser(sessions *session.Store, auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Get(c)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Session unavailable",
				Type:    types.ErrTypeAuthSession,
			}
		}

		id, ok := sess.Get(SessionUserKey).(uint64)
		if !ok {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Login required",
				Type:    types.ErrTypeAuthSession,
			}
		}

		user, err := auth.CurrentUser(c.Context(), id)
		if err != nil {
			return err
		}

		c.Locals(LocalsUserKey, user)
		return c.Next()
	}
}
