package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

const monthLabelLayout = "Jan 2006"

// MonthlySeries returns one point per calendar month for the months months
// ending with the month containing now, oldest first. Months without
// transactions are present with zero totals. months <= 0 yields an empty
// series.
func MonthlySeries(transactions []Transaction, months int, now time.Time) []MonthlyDataPoint {
	if months <= 0 {
		return []MonthlyDataPoint{}
	}

	series := make([]MonthlyDataPoint, 0, min(months, 12*DefaultMonths))
	for i := months - 1; i >= 0; i-- {
		start, end := monthRange(now, -i)
		income, expense := sumMonth(transactions, start, end)
		series = append(series, MonthlyDataPoint{
			Month:   start.Format(monthLabelLayout),
			Income:  income,
			Expense: expense,
			Net:     income.Sub(expense),
		})
	}
	return series
}

// sumMonth totals income and expense amounts dated inside [start, end].
func sumMonth(transactions []Transaction, start, end time.Time) (income, expense decimal.Decimal) {
	for _, t := range transactions {
		if !inMonth(t, start, end) {
			continue
		}
		switch t.Type {
		case Income:
			income = income.Add(t.Amount)
		case Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return income, expense
}
