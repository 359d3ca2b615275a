package analytics

import (
	"io"
	"strings"
	"time"
)

// CSVHeader is the first line of every export.
const CSVHeader = "Date,Description,Category,Type,Amount"

// NoCategory is written in place of the category name of uncategorized
// transactions.
const NoCategory = "No category"

// FormatCSV renders transactions in their given order, one row each, below
// CSVHeader. Rows are separated by a single newline with none after the last.
func FormatCSV(transactions []Transaction) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	for _, t := range transactions {
		b.WriteByte('\n')
		b.WriteString(csvRow(t))
	}
	return b.String()
}

// WriteCSV writes FormatCSV(transactions) to w.
func WriteCSV(w io.Writer, transactions []Transaction) error {
	_, err := io.WriteString(w, FormatCSV(transactions))
	return err
}

func csvRow(t Transaction) string {
	category := NoCategory
	if t.Category != nil && t.Category.Name != "" {
		category = t.Category.Name
	}
	return strings.Join([]string{
		csvDate(t.TransactionDate),
		quote(t.Description),
		quote(category),
		string(t.Type),
		t.Amount.StringFixed(2),
	}, ",")
}

// csvDate normalizes a transaction date to YYYY-MM-DD. A date that cannot be
// read is written as given.
func csvDate(s string) string {
	d, ok := parseDate(s, time.UTC)
	if !ok {
		return s
	}
	return d.Format("2006-01-02")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
