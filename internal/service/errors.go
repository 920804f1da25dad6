package service

import "errors"

// Sentinel errors shared by the handlers' status mapping. Messages are part
// of the public API contract, including their original spelling.
var (
	ErrEmailAlreadyExists = errors.New("User Mail Already Exist")
	ErrUserNotFound       = errors.New("User is not found,Please Sign Up")
	ErrWrongPassword      = errors.New("Password is Wrong")
	ErrProfileNotFound    = errors.New("User not found")
	ErrMovieNotFound      = errors.New("Movie not Found")
	ErrGenreNotFound      = errors.New("Genres not Found")
	ErrLanguageNotFound   = errors.New("Language not Found")
	ErrLocationNotFound   = errors.New("Location not Found.")
	ErrReviewNotFound     = errors.New("Review Not Found")
)

// ValidationError marks malformed input rejected before any write happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
