package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/studyplan/internal/api/shared"
	"github.com/phrazzld/studyplan/internal/domain"
	"github.com/phrazzld/studyplan/internal/domain/plan"
	"github.com/phrazzld/studyplan/internal/service/auth"
	"github.com/phrazzld/studyplan/internal/store"
)

// NoTasksMessage is shown when a plan is requested with an empty task list.
const NoTasksMessage = "No tasks available. Please add some tasks first."

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, plan.ErrNoTasks),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that does not
// leak internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, plan.ErrNoTasks):
		return NoTasksMessage

	case errors.As(err, &validationErr):
		if validationErr.Field == "" {
			return "Invalid request: " + validationErr.Message
		}
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid task data"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Task already exists"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator failures into a short message
// naming the offending JSON fields.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}

	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s %s", fe.Field(), validationTagMessage(fe.Tag())))
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "max":
		return "is too long"
	case "min":
		return "is too short"
	default:
		return "is invalid"
	}
}

// HandleAPIError maps err to a status and safe message and writes the
// response. For server errors, fallbackMsg replaces the generic message when
// it is non-empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMsg != "" {
		message = fallbackMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
