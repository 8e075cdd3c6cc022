// auth_service.go
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

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/localnerve/flashdeck/internal/models"
	"github.com/localnerve/flashdeck/internal/store"
	"github.com/localnerve/flashdeck/internal/types"
	"golang.org/x/crypto/bcrypt"
)

const maxUsernameLen = 50

// AuthService owns the credential and identity lifecycle.
type AuthService struct {
	users store.UserStore
}

// NewAuthService creates an AuthService on the given user store.
func NewAuthService(users store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// SignUp validates the credentials, hashes the password and persists
// the new user. Username matching is case-sensitive and exact.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, types.NewValidationError(types.ErrTypeAuthValidation, "Username and password cannot be blank")
	}
	if len(username) > maxUsernameLen {
		return nil, types.NewValidationError(types.ErrTypeAuthValidation, "Username is too long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, types.NewConflictError(types.ErrTypeAuthConflict, "That username is already taken")
		}
		return nil, err
	}

	return user, nil
}

// LogIn verifies the credentials and returns the matching user.
// Missing user and bad password are indistinguishable to the caller.
func (s *AuthService) LogIn(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.NewAuthError(types.ErrTypeAuthCredentials, "Invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, types.NewAuthError(types.ErrTypeAuthCredentials, "Invalid username or password")
	}

	return user, nil
}

// CurrentUser resolves a session-bound user id to its user record.
func (s *AuthService) CurrentUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.NewAuthError(types.ErrTypeAuthSession, "Session user no longer exists")
		}
		return nil, err
	}
	return user, nil
}
