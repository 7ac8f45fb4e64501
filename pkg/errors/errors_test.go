package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorsSetStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("Reservation"), http.StatusNotFound},
		{"not found with id", NotFoundWithID("Reservation", "res-1"), http.StatusNotFound},
		{"validation", Validation("bad input", nil), http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad id"), http.StatusBadRequest},
		{"conflict", Conflict("room taken"), http.StatusConflict},
		{"internal", Internal("boom", errors.New("cause")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, tt.err.HTTPStatus)
			}
			if tt.err.Error() == "" {
				t.Error("error message must not be empty")
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := Internal("store unavailable", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause must be reachable with errors.Is")
	}
}

func TestWithDetails(t *testing.T) {
	err := Conflict("room taken").WithDetails(map[string]any{"rooms": []string{"B1"}})
	if err.Details == nil || err.Details["rooms"] == nil {
		t.Error("details not attached")
	}
}

func TestAsAppError(t *testing.T) {
	conflict := Conflict("room taken")
	if got := AsAppError(conflict); got != conflict {
		t.Error("AppError must pass through unchanged")
	}

	plain := errors.New("plain")
	got := AsAppError(plain)
	if got.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("plain errors must map to 500, got %d", got.HTTPStatus)
	}
	if !IsAppError(got) {
		t.Error("result must be an AppError")
	}
}
