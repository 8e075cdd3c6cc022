package types

import "fmt"

// Error type tags surfaced in the JSON error envelope.
const (
	ErrTypeAuthValidation    = "auth.validation"
	ErrTypeAuthConflict      = "auth.conflict"
	ErrTypeAuthCredentials   = "auth.credentials"
	ErrTypeAuthSession       = "auth.session"
	ErrTypeCardValidation    = "flashcard.validation"
	ErrTypeCardAuthorization = "flashcard.authorization"
	ErrTypeCardNotFound      = "flashcard.notfound"
	ErrTypeQuizInsufficient  = "quiz.insufficient"
	ErrTypeQuizNotFound      = "quiz.notfound"
	ErrTypeScoreValidation   = "score.validation"
	ErrTypeUserNotFound      = "user.notfound"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError builds a 400 error for an empty or malformed field
func NewValidationError(errType, message string) *CustomError {
	return &CustomError{Code: 400, Message: message, Type: errType}
}

// NewConflictError builds a 409 error for a uniqueness violation
func NewConflictError(errType, message string) *CustomError {
	return &CustomError{Code: 409, Message: message, Type: errType}
}

// NewAuthError builds a 401 error for bad credentials or a missing session
func NewAuthError(errType, message string) *CustomError {
	return &CustomError{Code: 401, Message: message, Type: errType}
}

// NewForbiddenError builds a 403 error for an ownership violation
func NewForbiddenError(errType, message string) *CustomError {
	return &CustomError{Code: 403, Message: message, Type: errType}
}

// NewNotFoundError builds a 404 error for a missing record
func NewNotFoundError(errType, message string) *CustomError {
	return &CustomError{Code: 404, Message: message, Type: errType}
}

// NewInsufficientDataError builds a 422 error for a deck too small to quiz
func NewInsufficientDataError(message string) *CustomError {
	return &CustomError{Code: 422, Message: message, Type: ErrTypeQuizInsufficient}
}
