package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if e.Error() != "INTERNAL_ERROR: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	d := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).WithDetails("name: is required")
	body := d.ToHTTPError()
	if body.Error.Code != "INVALID_REQUEST" || len(body.Error.Details) != 1 || body.Error.Details[0] != "name: is required" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
