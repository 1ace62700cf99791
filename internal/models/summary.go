package models

import "github.com/shopspring/decimal"

// CategoryTotal is the summed amount of all expenses in one category.
type CategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Count    int             `json:"count"`
	Total    float64         `json:"total"`
}

// Summary holds per-category totals computed from a full expense list.
type Summary struct {
	Categories []CategoryTotal `json:"categories"`
	Total      float64         `json:"total"`
}

// SummarizeByCategory sums expenses per category with decimal arithmetic.
// Every category appears in the result, in display order, even with no
// expenses.
func SummarizeByCategory(expenses []Expense) Summary {
	sums := make(map[ExpenseCategory]decimal.Decimal, len(Categories()))
	counts := make(map[ExpenseCategory]int, len(Categories()))
	grand := decimal.Zero

	for _, e := range expenses {
		amount := decimal.NewFromFloat(e.Amount).Round(AmountScale)
		sums[e.Category] = sums[e.Category].Add(amount)
		counts[e.Category]++
		grand = grand.Add(amount)
	}

	summary := Summary{
		Categories: make([]CategoryTotal, 0, len(Categories())),
		Total:      grand.InexactFloat64(),
	}
	for _, c := range Categories() {
		summary.Categories = append(summary.Categories, CategoryTotal{
			Category: c,
			Count:    counts[c],
			Total:    sums[c].InexactFloat64(),
		})
	}
	return summary
}
