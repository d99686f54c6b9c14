package errors

import (
	"net/http"
	"testing"

	"github.com/houzze/houzze-api/constant"
)

func TestCustomError(t *testing.T) {
	err := SetCustomError(constant.ErrVacancyNotFound)

	if err.Error() != "Vacancy not found." {
		t.Fatalf("Error() = %q", err.Error())
	}
	if err.ErrorHTTPCode() != http.StatusNotFound {
		t.Fatalf("ErrorHTTPCode() = %d", err.ErrorHTTPCode())
	}
	if err.ErrorCode() != "0009" {
		t.Fatalf("ErrorCode() = %q", err.ErrorCode())
	}
	if len(err.ErrorMessages()) != 0 {
		t.Fatalf("ErrorMessages() = %v", err.ErrorMessages())
	}
}

func TestCustomErrorWithMessages(t *testing.T) {
	msgs := []string{
		"Title must be at least 3 characters long.",
		"Rent must be a positive number.",
	}
	err := SetCustomErrorWithMessages(constant.ErrValidation, msgs)

	want := "Title must be at least 3 characters long., Rent must be a positive number."
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if err.ErrorHTTPCode() != http.StatusUnprocessableEntity {
		t.Fatalf("ErrorHTTPCode() = %d", err.ErrorHTTPCode())
	}
	if got := err.ErrorMessages(); len(got) != 2 {
		t.Fatalf("ErrorMessages() = %v", got)
	}
}
