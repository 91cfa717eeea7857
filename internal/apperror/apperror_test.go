package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("empty reason"), http.StatusBadRequest},
		{"not found", NotFound("door %s not found", "d1"), http.StatusNotFound},
		{"invalid state", InvalidState("inspection already in progress"), http.StatusUnprocessableEntity},
		{"conflict", Conflict("concurrent start"), http.StatusConflict},
		{"dependency", Dependency(errors.New("dial tcp"), "storage unavailable"), http.StatusBadGateway},
		{"wrapped", fmt.Errorf("start inspection: %w", InvalidState("busy")), http.StatusUnprocessableEntity},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("complete inspection: %w", InvalidState("not in progress"))

	if !IsKind(err, KindInvalidState) {
		t.Errorf("IsKind() should match through wrapping")
	}
	if IsKind(err, KindValidation) {
		t.Errorf("IsKind() matched the wrong kind")
	}
	if IsKind(errors.New("boom"), KindValidation) {
		t.Errorf("IsKind() matched an unclassified error")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(NotFound("door not found")); got != "door not found" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("pq: connection refused")); got != "internal error" {
		t.Errorf("UserMessage() leaked internal detail: %q", got)
	}
}
