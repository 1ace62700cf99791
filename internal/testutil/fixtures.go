package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"expensetracker/internal/models"
)

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// CreateTestExpense inserts a row directly, bypassing the service layer.
// amount is a decimal string such as "25.50"; date is YYYY-MM-DD.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount string, category models.ExpenseCategory, date string, description *string) *models.ExpenseRecord {
	t.Helper()

	d, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", date, err)
	}

	record := &models.ExpenseRecord{
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        d,
		Description: description,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return record
}

// CountExpenses returns the number of stored expense rows.
func CountExpenses(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.ExpenseRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count expenses: %v", err)
	}
	return count
}
