// Package analytics derives the dashboard views of a transaction list: a
// monthly income/expense series, an expense breakdown by category and summary
// statistics comparing the current calendar month with the previous one.
//
// Every function is a pure computation over its arguments. The current date is
// always passed in by the caller so results are reproducible.
package analytics

import "github.com/shopspring/decimal"

// DefaultMonths is the length of the monthly series when the caller does not
// choose one.
const DefaultMonths = 6

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Category is the display metadata of a transaction category.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Color string          `json:"color"`
}

// Transaction is the input record of every aggregation.
type Transaction struct {
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Type            TransactionType `json:"type"`
	TransactionDate string          `json:"transaction_date"`
	Category        *Category       `json:"category,omitempty"`
}

// MonthlyDataPoint holds the totals of one calendar month.
type MonthlyDataPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// CategoryBreakdownEntry is the expense total of one category.
type CategoryBreakdownEntry struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// SummaryStats compares the current calendar month with the previous one.
// IncomeChange and ExpenseChange are percentages.
type SummaryStats struct {
	CurrentIncome   decimal.Decimal `json:"currentIncome"`
	CurrentExpenses decimal.Decimal `json:"currentExpenses"`
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	IncomeChange    decimal.Decimal `json:"incomeChange"`
	ExpenseChange   decimal.Decimal `json:"expenseChange"`
}

// Dashboard bundles the three derived views.
type Dashboard struct {
	MonthlyData  []MonthlyDataPoint       `json:"monthlyData"`
	CategoryData []CategoryBreakdownEntry `json:"categoryData"`
	Stats        SummaryStats             `json:"stats"`
}
