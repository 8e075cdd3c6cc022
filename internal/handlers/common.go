// common.go
//
// A multi-user flashcard and quiz service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of flashdeck.
// flashdeck is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// flashdeck is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with flashdeck.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/localnerve/flashdeck/internal/middleware"
	"github.com/localnerve/flashdeck/internal/models"
	"github.com/localnerve/flashdeck/internal/types"
)

// currentUser returns the user resolved by the auth middleware.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(middleware.LocalsUserKey).(*models.User)
	if !ok || user == nil {
		return nil, &types.CustomError{
			Code:    fiber.StatusUnauthorized,
			Message: "Login required",
			Type:    types.ErrTypeAuthSession,
		}
	}
	return user, nil
}

// sessionUserID reads the user id bound to the session, if any.
func sessionUserID(c *fiber.Ctx, sessions *session.Store) (uint64, bool) {
	sess, err := sessions.Get(c)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Get(middleware.SessionUserKey).(uint64)
	return id, ok
}

// bindSession binds the session to the authenticated user id.
func bindSession(c *fiber.Ctx, sessions *session.Store, userID uint64) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(middleware.SessionUserKey, userID)
	return sess.Save()
}

// destroySession drops the session if one exists; idempotent.
func destroySession(c *fiber.Ctx, sessions *session.Store) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// parseIDParam parses the named route parameter as an entity id.
func parseIDParam(c *fiber.Ctx, name, errType string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, types.NewValidationError(errType, "Invalid id in path")
	}
	return id, nil
}
