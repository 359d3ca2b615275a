package main

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"financetracker/analytics"
	"financetracker/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

const (
	dateLayout   = "2006-01-02"
	defaultColor = "#6B7280"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var validFrequencies = map[string]bool{
	"daily":   true,
	"weekly":  true,
	"monthly": true,
	"yearly":  true,
}

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// validateHexColor validates that a color is in hex format (#RRGGBB)
func validateHexColor(color string) error {
	if color == "" {
		return nil // caller substitutes defaultColor
	}
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("color must be in hex format (#RRGGBB)")
	}
	return nil
}

func validateType(t string) error {
	switch analytics.TransactionType(t) {
	case analytics.Income, analytics.Expense:
		return nil
	}
	return fmt.Errorf("type must be income or expense")
}

func validateFrequency(f string) error {
	if !validFrequencies[f] {
		return fmt.Errorf("frequency must be one of daily, weekly, monthly, yearly")
	}
	return nil
}

func validateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	return nil
}

// parseDate reads a YYYY-MM-DD date
func parseDate(s string) (pgtype.Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// parseUUID converts a path or body ID into a pgtype.UUID
func parseUUID(s string) (pgtype.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return pgtype.UUID{}, err
	}
	return pgtype.UUID{Bytes: id, Valid: true}, nil
}

// parseOptionalUUID treats nil and "" as NULL
func parseOptionalUUID(s *string) (pgtype.UUID, error) {
	if s == nil || *s == "" {
		return pgtype.UUID{Valid: false}, nil
	}
	return parseUUID(*s)
}

// handleDatabaseError converts database errors to appropriate HTTP responses
func handleDatabaseError(err error) (statusCode int, message string) {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return http.StatusServiceUnavailable, "Database temporarily unavailable"
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, "Resource not found"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "categories_name_key" {
				return http.StatusConflict, "Category with this name already exists"
			}
			return http.StatusConflict, "Resource already exists"
		case "23503":
			return http.StatusBadRequest, "Referenced category does not exist"
		case "23514":
			return http.StatusBadRequest, "Value violates a check constraint"
		}
	}

	return http.StatusInternalServerError, "Internal server error"
}

// Conversion utility functions

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	d = d.Round(2)
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func uuidString(id pgtype.UUID) string {
	return uuid.UUID(id.Bytes).String()
}

func optionalUUIDString(id pgtype.UUID) *string {
	if !id.Valid {
		return nil
	}
	s := uuidString(id)
	return &s
}

func dateString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateLayout)
}

// today returns the current calendar date at UTC midnight
func today() time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// categoryIndex resolves categories by ID for responses and by name for CSV import
type categoryIndex struct {
	byID   map[[16]byte]generated.Category
	byName map[string]generated.Category
}

func newCategoryIndex(categories []generated.Category) *categoryIndex {
	idx := &categoryIndex{
		byID:   make(map[[16]byte]generated.Category, len(categories)),
		byName: make(map[string]generated.Category, len(categories)),
	}
	for _, category := range categories {
		idx.byID[category.ID.Bytes] = category
		idx.byName[strings.ToLower(strings.TrimSpace(category.Name))] = category
	}
	return idx
}

func (idx *categoryIndex) lookup(id pgtype.UUID) *generated.Category {
	if idx == nil || !id.Valid {
		return nil
	}
	if category, ok := idx.byID[id.Bytes]; ok {
		return &category
	}
	return nil
}

// mapName finds the category for an imported name. "No category" and unknown
// names are uncategorized.
func (idx *categoryIndex) mapName(name string) *generated.Category {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == strings.ToLower(analytics.NoCategory) {
		return nil
	}
	if category, ok := idx.byName[key]; ok {
		return &category
	}
	return nil
}

func convertCategory(c generated.Category) Category {
	return Category{
		ID:        uuidString(c.ID),
		Name:      c.Name,
		Type:      c.Type,
		Color:     c.Color,
		CreatedAt: c.CreatedAt.Time,
	}
}

func summarizeCategory(c *generated.Category) *CategorySummary {
	if c == nil {
		return nil
	}
	return &CategorySummary{ID: uuidString(c.ID), Name: c.Name, Color: c.Color}
}

// convertTransaction converts a generated.Transaction to our Transaction struct
func convertTransaction(t generated.Transaction, idx *categoryIndex) Transaction {
	return Transaction{
		ID:              uuidString(t.ID),
		Amount:          numericToDecimal(t.Amount),
		Description:     t.Description,
		Type:            t.Type,
		TransactionDate: dateString(t.TransactionDate),
		CategoryID:      optionalUUIDString(t.CategoryID),
		Category:        summarizeCategory(idx.lookup(t.CategoryID)),
		CreatedAt:       t.CreatedAt.Time,
		UpdatedAt:       t.UpdatedAt.Time,
	}
}

func convertRecurring(r generated.RecurringTransaction, idx *categoryIndex) RecurringTransaction {
	return RecurringTransaction{
		ID:          uuidString(r.ID),
		Amount:      numericToDecimal(r.Amount),
		Description: r.Description,
		Type:        r.Type,
		Frequency:   r.Frequency,
		NextDueDate: dateString(r.NextDueDate),
		IsActive:    r.IsActive,
		CategoryID:  optionalUUIDString(r.CategoryID),
		Category:    summarizeCategory(idx.lookup(r.CategoryID)),
		CreatedAt:   r.CreatedAt.Time,
	}
}

// toAnalytics attaches category metadata to stored transactions. A dangling
// category_id leaves the transaction uncategorized.
func toAnalytics(transactions []generated.Transaction, idx *categoryIndex) []analytics.Transaction {
	out := make([]analytics.Transaction, 0, len(transactions))
	for _, t := range transactions {
		at := analytics.Transaction{
			Amount:          numericToDecimal(t.Amount),
			Description:     t.Description,
			Type:            analytics.TransactionType(t.Type),
			TransactionDate: dateString(t.TransactionDate),
		}
		if c := idx.lookup(t.CategoryID); c != nil {
			at.Category = &analytics.Category{
				ID:    uuidString(c.ID),
				Name:  c.Name,
				Type:  analytics.TransactionType(c.Type),
				Color: c.Color,
			}
		}
		out = append(out, at)
	}
	return out
}
