package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewCatalogLoadError wraps a failure to read or parse the product source.
func NewCatalogLoadError(cause error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("failed to load product catalog: %v", cause),
	}
}

// NewCardDirectoryLoadError wraps a failure to read or parse the discount
// card source.
func NewCardDirectoryLoadError(cause error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("failed to load discount cards: %v", cause),
	}
}

// NewProductNotFoundError reports a basket referencing an unknown product ID.
// The whole basket resolution aborts on this error.
func NewProductNotFoundError(id int) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Product with ID %d not found.", id),
	}
}

// NewInvalidQuantityError reports a zero or negative requested quantity.
func NewInvalidQuantityError(id, quantity int) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("invalid quantity %d for product %d: quantity must be positive", quantity, id),
	}
}

// NewInvalidArgumentError reports malformed invocation parameters.
func NewInvalidArgumentError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsNotFound reports whether err is an AppError carrying a 404 code.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusNotFound
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
