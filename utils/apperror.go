package utils

import "net/http"

// Error codes surfaced in the response envelope.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthRequired   = "AUTH_REQUIRED"
	CodeAuthInvalid    = "AUTH_INVALID"
	CodeAuthConfig     = "AUTH_CONFIG_ERROR"
	CodeNoActiveUser   = "NO_ACTIVE_USER"
	CodeNotFound       = "NOT_FOUND"
	CodePuzzleNotFound = "PUZZLE_NOT_FOUND"
	CodeFormNotFound   = "FORM_NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
)

// AppError is the operational error type used by services and middleware.
// Status is the HTTP status the controller layer maps it to.
type AppError struct {
	Message string
	Status  int
	Code    string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(message string, status int, code string) *AppError {
	return &AppError{Message: message, Status: status, Code: code}
}

func ValidationError(message string) *AppError {
	return NewAppError(message, http.StatusBadRequest, CodeValidation)
}

func NotFoundError(message string) *AppError {
	return NewAppError(message, http.StatusNotFound, CodeNotFound)
}

// NoActiveUserError signals that no user has been created in this process.
func NoActiveUserError() *AppError {
	return NewAppError("No active user found. Start a game first.", http.StatusNotFound, CodeNoActiveUser)
}

func PuzzleNotFoundError() *AppError {
	return NewAppError("No puzzle found for this key.", http.StatusNotFound, CodePuzzleNotFound)
}

func FormNotFoundError() *AppError {
	return NewAppError("No form found for this task.", http.StatusNotFound, CodeFormNotFound)
}
