package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// From maps a service error onto its API status and code. Unrecognized
// errors become 500s with a generic code so internals never leak to clients.
func From(err error) *Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, scheduler.ErrUserNotFound):
		return New(http.StatusNotFound, "user_not_found", err)
	case errors.Is(err, scheduler.ErrLearningPathNotFound):
		return New(http.StatusNotFound, "learning_path_not_found", err)
	case errors.Is(err, scheduler.ErrStitchNotFound):
		return New(http.StatusNotFound, "stitch_not_found", err)
	case errors.Is(err, scheduler.ErrNoStitchesAvailable):
		return New(http.StatusNotFound, "no_stitches_available", err)
	case errors.Is(err, scheduler.ErrInvalidPerformanceData):
		return New(http.StatusUnprocessableEntity, "invalid_performance_data", err)
	case errors.Is(err, scheduler.ErrPathAlreadyInitialized):
		return New(http.StatusConflict, "path_already_initialized", err)
	case errors.Is(err, scheduler.ErrRepositioningFailed):
		return New(http.StatusConflict, "repositioning_failed", err)
	default:
		return New(http.StatusInternalServerError, "internal_error", errors.New("internal error"))
	}
}
