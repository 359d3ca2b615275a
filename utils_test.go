package main

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"testing"

	"financetracker/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDatabaseError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"breaker open", gobreaker.ErrOpenState, http.StatusServiceUnavailable, "Database temporarily unavailable"},
		{"breaker half-open limit", gobreaker.ErrTooManyRequests, http.StatusServiceUnavailable, "Database temporarily unavailable"},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound, "Resource not found"},
		{"wrapped no rows", fmt.Errorf("loading: %w", pgx.ErrNoRows), http.StatusNotFound, "Resource not found"},
		{"duplicate category", &pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"}, http.StatusConflict, "Category with this name already exists"},
		{"other duplicate", &pgconn.PgError{Code: "23505", ConstraintName: "reminders_pkey"}, http.StatusConflict, "Resource already exists"},
		{"foreign key", &pgconn.PgError{Code: "23503"}, http.StatusBadRequest, "Referenced category does not exist"},
		{"check constraint", &pgconn.PgError{Code: "23514"}, http.StatusBadRequest, "Value violates a check constraint"},
		{"other pg error", &pgconn.PgError{Code: "57014"}, http.StatusInternalServerError, "Internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := handleDatabaseError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestNumericConversion(t *testing.T) {
	t.Run("decimal to numeric rounds to cents", func(t *testing.T) {
		n := decimalToNumeric(decimal.RequireFromString("19.999"))
		assert.True(t, n.Valid)
		assertDecimalEqual(t, "20.00", numericToDecimal(n))
	})

	t.Run("round trip keeps value", func(t *testing.T) {
		for _, s := range []string{"0", "0.01", "12.5", "1234567.89"} {
			assertDecimalEqual(t, s, numericToDecimal(decimalToNumeric(decimal.RequireFromString(s))))
		}
	})

	t.Run("scanned numeric", func(t *testing.T) {
		n := pgtype.Numeric{Int: big.NewInt(4250), Exp: -2, Valid: true}
		assertDecimalEqual(t, "42.50", numericToDecimal(n))
	})

	t.Run("null and NaN become zero", func(t *testing.T) {
		assert.True(t, numericToDecimal(pgtype.Numeric{}).IsZero())
		assert.True(t, numericToDecimal(pgtype.Numeric{NaN: true, Valid: true}).IsZero())
	})
}

func TestParseHelpers(t *testing.T) {
	t.Run("parseDate", func(t *testing.T) {
		d, err := parseDate(" 2024-02-29 ")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", dateString(d))

		for _, bad := range []string{"", "2025-02-30", "15/03/2025", "2025-3-1"} {
			_, err := parseDate(bad)
			assert.EqualError(t, err, "date must be in YYYY-MM-DD format", bad)
		}
	})

	t.Run("parseUUID", func(t *testing.T) {
		id := uuid.New()
		parsed, err := parseUUID(id.String())
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, id.String(), uuidString(parsed))

		_, err = parseUUID("not-a-uuid")
		assert.Error(t, err)
	})

	t.Run("parseOptionalUUID", func(t *testing.T) {
		empty := ""
		for _, s := range []*string{nil, &empty} {
			id, err := parseOptionalUUID(s)
			require.NoError(t, err)
			assert.False(t, id.Valid)
			assert.Nil(t, optionalUUIDString(id))
		}

		bad := "food"
		_, err := parseOptionalUUID(&bad)
		assert.Error(t, err)
	})

	t.Run("dateString of null", func(t *testing.T) {
		assert.Equal(t, "", dateString(pgtype.Date{}))
	})
}

func TestToday(t *testing.T) {
	assert.Equal(t, utcDate(2025, 3, 15), today())
}

func TestCategoryIndex(t *testing.T) {
	food := generated.Category{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Name: "Food & Dining", Type: "expense", Color: "#EF4444"}
	salary := generated.Category{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Name: "Salary", Type: "income", Color: "#10B981"}
	idx := newCategoryIndex([]generated.Category{food, salary})

	t.Run("lookup by ID", func(t *testing.T) {
		got := idx.lookup(food.ID)
		require.NotNil(t, got)
		assert.Equal(t, "Food & Dining", got.Name)

		assert.Nil(t, idx.lookup(pgtype.UUID{}))
		assert.Nil(t, idx.lookup(pgtype.UUID{Bytes: uuid.New(), Valid: true}))

		var nilIndex *categoryIndex
		assert.Nil(t, nilIndex.lookup(food.ID))
	})

	t.Run("map imported names", func(t *testing.T) {
		tests := []struct {
			name string
			want *generated.Category
		}{
			{"Food & Dining", &food},
			{"  food & dining ", &food},
			{"SALARY", &salary},
			{"No category", nil},
			{"no category", nil},
			{"", nil},
			{"Travel", nil},
		}
		for _, tt := range tests {
			got := idx.mapName(tt.name)
			if tt.want == nil {
				assert.Nil(t, got, tt.name)
				continue
			}
			require.NotNil(t, got, tt.name)
			assert.Equal(t, tt.want.ID, got.ID, tt.name)
		}
	})
}

func TestConvertTransactionWithDanglingCategory(t *testing.T) {
	missing := pgtype.UUID{Bytes: uuid.New(), Valid: true}
	stored := generated.Transaction{
		ID:              pgtype.UUID{Bytes: uuid.New(), Valid: true},
		Amount:          decimalToNumeric(decimal.NewFromInt(7)),
		Description:     "Orphan",
		Type:            "expense",
		TransactionDate: mustDate(t, "2025-03-01"),
		CategoryID:      missing,
	}
	idx := newCategoryIndex(nil)

	transaction := convertTransaction(stored, idx)
	require.NotNil(t, transaction.CategoryID)
	assert.Equal(t, uuidString(missing), *transaction.CategoryID)
	assert.Nil(t, transaction.Category)

	converted := toAnalytics([]generated.Transaction{stored}, idx)
	require.Len(t, converted, 1)
	assert.Nil(t, converted[0].Category)
	assert.Equal(t, "2025-03-01", converted[0].TransactionDate)
}
