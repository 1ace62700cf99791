package validator

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
)

func validRequest() models.CreateExpenseRequest {
	return models.CreateExpenseRequest{
		Amount:   25.50,
		Category: models.CategoryFood,
		Date:     models.NewDate(2024, time.January, 15),
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
	return appErr.Fields
}

func TestStructCreateExpenseRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := Struct(validRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("valid_pointer", func(t *testing.T) {
		req := validRequest()
		if err := Struct(&req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cases := []struct {
		name    string
		mutate  func(*models.CreateExpenseRequest)
		field   string
		message string
	}{
		{"zero_amount", func(r *models.CreateExpenseRequest) { r.Amount = 0 }, "amount", "must be positive"},
		{"negative_amount", func(r *models.CreateExpenseRequest) { r.Amount = -5 }, "amount", "must be positive"},
		{"three_decimals", func(r *models.CreateExpenseRequest) { r.Amount = 1.005 }, "amount", "must have at most two decimal places"},
		{"too_large", func(r *models.CreateExpenseRequest) { r.Amount = 100000000 }, "amount", "must be less than 100000000"},
		{"missing_category", func(r *models.CreateExpenseRequest) { r.Category = "" }, "category", "is required"},
		{"unknown_category", func(r *models.CreateExpenseRequest) { r.Category = "Travel" }, "category", "must be one of Food, Transport, Utilities, Entertainment, Shopping"},
		{"lowercase_category", func(r *models.CreateExpenseRequest) { r.Category = "food" }, "category", "must be one of Food, Transport, Utilities, Entertainment, Shopping"},
		{"missing_date", func(r *models.CreateExpenseRequest) { r.Date = models.Date{} }, "date", "is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			fields := fieldsOf(t, Struct(req))
			if fields[tc.field] != tc.message {
				t.Errorf("expected %q on %s, got fields %v", tc.message, tc.field, fields)
			}
		})
	}

	t.Run("reports_every_field", func(t *testing.T) {
		fields := fieldsOf(t, Struct(models.CreateExpenseRequest{}))
		for _, f := range []string{"amount", "category", "date"} {
			if _, ok := fields[f]; !ok {
				t.Errorf("expected %s in %v", f, fields)
			}
		}
		if _, ok := fields["description"]; ok {
			t.Error("description is optional and must not be reported")
		}
	})

	t.Run("accepts_two_decimals", func(t *testing.T) {
		for _, amount := range []float64{0.01, 0.1, 15.99, 99999999.99} {
			req := validRequest()
			req.Amount = amount
			if err := Struct(req); err != nil {
				t.Errorf("amount %v: unexpected error: %v", amount, err)
			}
		}
	})
}

func TestStructExpense(t *testing.T) {
	valid := models.Expense{
		ID:        1,
		Amount:    15.99,
		Category:  models.CategoryTransport,
		Date:      models.NewDate(2024, time.February, 10),
		CreatedAt: time.Now(),
	}
	if err := Struct(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := valid
	invalid.ID = 0
	invalid.CreatedAt = time.Time{}
	fields := fieldsOf(t, Struct(invalid))
	if _, ok := fields["id"]; !ok {
		t.Errorf("expected id failure, got %v", fields)
	}
	if _, ok := fields["created_at"]; !ok {
		t.Errorf("expected created_at failure, got %v", fields)
	}
}

func TestRegister(t *testing.T) {
	Register()

	req := validRequest()
	req.Category = "Travel"
	err := binding.Validator.ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected gin's engine to reject an unknown category")
	}

	fields := fieldsOf(t, FromBindError(err))
	if _, ok := fields["category"]; !ok {
		t.Errorf("expected category failure reported by json name, got %v", fields)
	}

	if err := binding.Validator.ValidateStruct(&models.CreateExpenseRequest{
		Amount:   10,
		Category: models.CategoryFood,
		Date:     models.NewDate(2024, time.January, 1),
	}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFromBindError(t *testing.T) {
	t.Run("date_parse_error", func(t *testing.T) {
		var req models.CreateExpenseRequest
		err := json.Unmarshal([]byte(`{"amount":1,"category":"Food","date":"not a date"}`), &req)

		fields := fieldsOf(t, FromBindError(err))
		if fields["date"] != "must be a calendar date" {
			t.Errorf("unexpected fields %v", fields)
		}
	})

	t.Run("type_error", func(t *testing.T) {
		var req models.CreateExpenseRequest
		err := json.Unmarshal([]byte(`{"amount":"12","category":"Food","date":"2024-01-15"}`), &req)

		fields := fieldsOf(t, FromBindError(err))
		if fields["amount"] != "must be a number" {
			t.Errorf("unexpected fields %v", fields)
		}
	})

	t.Run("validation_errors", func(t *testing.T) {
		err := instanceErrors(t)

		fields := fieldsOf(t, FromBindError(err))
		if fields["amount"] != "must be positive" {
			t.Errorf("unexpected fields %v", fields)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		err := FromBindError(errors.New("unexpected EOF"))

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
		if appErr.Message != "Malformed request body" {
			t.Errorf("unexpected message %q", appErr.Message)
		}
	})
}

// instanceErrors returns the raw validator errors for an invalid request.
func instanceErrors(t *testing.T) error {
	t.Helper()

	_ = Struct(validRequest())
	req := validRequest()
	req.Amount = -1
	err := instance.Struct(req)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	return err
}
