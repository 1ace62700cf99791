package testutil

import (
	"errors"
	"testing"

	apperrors "expensetracker/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertValidationField checks that err is a VALIDATION_ERROR naming field
// with the given rule message.
func AssertValidationField(t *testing.T, err error, field, message string) {
	t.Helper()

	AssertAppError(t, err, apperrors.ErrValidation.Code)

	var appErr *apperrors.AppError
	errors.As(err, &appErr)
	got, ok := appErr.Fields[field]
	if !ok {
		t.Fatalf("expected validation failure on %q, got fields %v", field, appErr.Fields)
	}
	if got != message {
		t.Errorf("expected %q for field %q, got %q", message, field, got)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
