package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/numberloom/numberloom-backend/internal/scheduler"
)

func TestFromMapsSchedulerErrors(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{scheduler.ErrUserNotFound, http.StatusNotFound, "user_not_found"},
		{scheduler.ErrLearningPathNotFound, http.StatusNotFound, "learning_path_not_found"},
		{scheduler.ErrStitchNotFound, http.StatusNotFound, "stitch_not_found"},
		{scheduler.ErrNoStitchesAvailable, http.StatusNotFound, "no_stitches_available"},
		{scheduler.ErrInvalidPerformanceData, http.StatusUnprocessableEntity, "invalid_performance_data"},
		{scheduler.ErrPathAlreadyInitialized, http.StatusConflict, "path_already_initialized"},
		{scheduler.ErrRepositioningFailed, http.StatusConflict, "repositioning_failed"},
	}
	for _, tc := range cases {
		got := From(fmt.Errorf("context: %w", tc.err))
		if got.Status != tc.wantStatus {
			t.Fatalf("%v: status got %d want %d", tc.err, got.Status, tc.wantStatus)
		}
		if got.Code != tc.wantCode {
			t.Fatalf("%v: code got %q want %q", tc.err, got.Code, tc.wantCode)
		}
	}
}

func TestFromHidesUnknownErrors(t *testing.T) {
	got := From(errors.New("pq: connection refused"))
	if got.Status != http.StatusInternalServerError {
		t.Fatalf("status got %d", got.Status)
	}
	if got.Error() != "internal error" {
		t.Fatalf("internal detail leaked: %q", got.Error())
	}
}

func TestFromNil(t *testing.T) {
	if got := From(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
