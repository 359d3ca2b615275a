package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary computes the balance over all transactions and the income and
// expense totals of the month containing now, with their percentage change
// against the previous month.
//
// A change is reported as 0 whenever the previous month's total is 0, so "no
// activity last month" and "no change" look the same.
func Summary(transactions []Transaction, now time.Time) SummaryStats {
	curStart, curEnd := monthRange(now, 0)
	lastStart, lastEnd := monthRange(now, -1)

	currentIncome, currentExpenses := sumMonth(transactions, curStart, curEnd)
	lastIncome, lastExpenses := sumMonth(transactions, lastStart, lastEnd)

	return SummaryStats{
		CurrentIncome:   currentIncome,
		CurrentExpenses: currentExpenses,
		TotalBalance:    balance(transactions),
		IncomeChange:    percentChange(currentIncome, lastIncome),
		ExpenseChange:   percentChange(currentExpenses, lastExpenses),
	}
}

// balance adds income and subtracts everything else, regardless of date.
func balance(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == Income {
			total = total.Add(t.Amount)
		} else {
			total = total.Sub(t.Amount)
		}
	}
	return total
}

func percentChange(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// BuildDashboard computes every view for the same transactions and instant.
func BuildDashboard(transactions []Transaction, months int, now time.Time) Dashboard {
	return Dashboard{
		MonthlyData:  MonthlySeries(transactions, months, now),
		CategoryData: CategoryBreakdown(transactions),
		Stats:        Summary(transactions, now),
	}
}
