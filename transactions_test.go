package main

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetTransactions tests the GET /api/transactions endpoint
func TestGetTransactions(t *testing.T) {
	cleanupTestData()

	t.Run("should return empty array when no transactions exist", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions", nil)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `[]`, resp.Body.String())
	})

	t.Run("should return newest first with embedded category", func(t *testing.T) {
		foodID := createTestCategory(t, "Food", "expense", "#EF4444")
		createTestTransaction(t, "expense", "8.20", "2025-02-01", "Bakery", foodID)
		createTestTransaction(t, "income", "3000", "2025-03-01", "Salary", "")

		resp := makeRequest("GET", "/api/transactions", nil)
		assert.Equal(t, http.StatusOK, resp.Code)

		var transactions []Transaction
		parseJSONResponse(t, resp, &transactions)
		require.Len(t, transactions, 2)

		assert.Equal(t, "Salary", transactions[0].Description)
		assert.Equal(t, "2025-03-01", transactions[0].TransactionDate)
		assert.Nil(t, transactions[0].Category)

		assert.Equal(t, "Bakery", transactions[1].Description)
		assertDecimalEqual(t, "8.20", transactions[1].Amount)
		require.NotNil(t, transactions[1].Category)
		assert.Equal(t, "Food", transactions[1].Category.Name)
		assert.Equal(t, "#EF4444", transactions[1].Category.Color)
		require.NotNil(t, transactions[1].CategoryID)
		assert.Equal(t, foodID, *transactions[1].CategoryID)
	})

	t.Run("should write amounts as JSON numbers", func(t *testing.T) {
		resp := makeRequest("GET", "/api/transactions", nil)
		assert.Contains(t, resp.Body.String(), `"amount":8.2`)
		assert.NotContains(t, resp.Body.String(), `"amount":"`)
	})
}

// TestCreateTransaction tests the POST /api/transactions endpoint
func TestCreateTransaction(t *testing.T) {
	cleanupTestData()
	foodID := createTestCategory(t, "Food", "expense", "#EF4444")

	t.Run("should create categorized transaction", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/transactions", map[string]interface{}{
			"amount":           12.5,
			"description":      "Coffee, large",
			"type":             "expense",
			"transaction_date": "2025-03-05",
			"category_id":      foodID,
		})
		assert.Equal(t, http.StatusCreated, resp.Code)

		var transaction Transaction
		parseJSONResponse(t, resp, &transaction)
		assertDecimalEqual(t, "12.5", transaction.Amount)
		assert.Equal(t, "Coffee, large", transaction.Description)
		assert.Equal(t, "2025-03-05", transaction.TransactionDate)
		require.NotNil(t, transaction.Category)
		assert.Equal(t, "Food", transaction.Category.Name)
	})

	t.Run("should create uncategorized transaction", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/transactions", map[string]interface{}{
			"amount":           0,
			"description":      "Free sample",
			"type":             "income",
			"transaction_date": "2025-03-06",
			"category_id":      "",
		})
		assert.Equal(t, http.StatusCreated, resp.Code)

		var transaction Transaction
		parseJSONResponse(t, resp, &transaction)
		assert.Nil(t, transaction.CategoryID)
		assert.True(t, transaction.Amount.IsZero())
	})

	t.Run("should round amounts to cents", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/transactions", map[string]interface{}{
			"amount":           "10.005",
			"description":      "Rounding",
			"type":             "expense",
			"transaction_date": "2025-03-06",
		})
		assert.Equal(t, http.StatusCreated, resp.Code)

		var transaction Transaction
		parseJSONResponse(t, resp, &transaction)
		assertDecimalEqual(t, "10.01", transaction.Amount)
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/transactions", map[string]interface{}{
			"amount":           5,
			"description":      "Ghost",
			"type":             "expense",
			"transaction_date": "2025-03-06",
			"category_id":      uuid.NewString(),
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Referenced category does not exist", errorMessage(t, resp))
	})

	invalid := []struct {
		name string
		body map[string]interface{}
		msg  string
	}{
		{"negative amount", map[string]interface{}{"amount": -1, "description": "x", "type": "expense", "transaction_date": "2025-03-01"}, "amount cannot be negative"},
		{"empty description", map[string]interface{}{"amount": 1, "description": " ", "type": "expense", "transaction_date": "2025-03-01"}, "description cannot be empty"},
		{"bad type", map[string]interface{}{"amount": 1, "description": "x", "type": "refund", "transaction_date": "2025-03-01"}, "type must be income or expense"},
		{"bad date", map[string]interface{}{"amount": 1, "description": "x", "type": "expense", "transaction_date": "03/01/2025"}, "date must be in YYYY-MM-DD format"},
		{"bad category ID", map[string]interface{}{"amount": 1, "description": "x", "type": "expense", "transaction_date": "2025-03-01", "category_id": "food"}, "invalid category ID"},
		{"non-numeric amount", map[string]interface{}{"amount": "lots", "description": "x", "type": "expense", "transaction_date": "2025-03-01"}, "Invalid request body"},
	}
	for _, tc := range invalid {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			resp := makeJSONRequest(t, "POST", "/api/transactions", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, tc.msg, errorMessage(t, resp))
		})
	}
}

// TestUpdateTransaction tests the PUT /api/transactions/:id endpoint
func TestUpdateTransaction(t *testing.T) {
	cleanupTestData()
	rentID := createTestCategory(t, "Rent", "expense", "#3B82F6")
	transactionID := createTestTransaction(t, "expense", "900", "2025-03-01", "March rent", "")

	t.Run("should replace every field", func(t *testing.T) {
		resp := makeJSONRequest(t, "PUT", "/api/transactions/"+transactionID, map[string]interface{}{
			"amount":           950,
			"description":      "March rent (adjusted)",
			"type":             "expense",
			"transaction_date": "2025-03-02",
			"category_id":      rentID,
		})
		assert.Equal(t, http.StatusOK, resp.Code)

		var transaction Transaction
		parseJSONResponse(t, resp, &transaction)
		assert.Equal(t, transactionID, transaction.ID)
		assertDecimalEqual(t, "950", transaction.Amount)
		assert.Equal(t, "2025-03-02", transaction.TransactionDate)
		require.NotNil(t, transaction.Category)
		assert.Equal(t, "Rent", transaction.Category.Name)
	})

	t.Run("should return 404 for unknown transaction", func(t *testing.T) {
		resp := makeJSONRequest(t, "PUT", "/api/transactions/"+uuid.NewString(), map[string]interface{}{
			"amount":           1,
			"description":      "x",
			"type":             "expense",
			"transaction_date": "2025-03-02",
		})
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Transaction not found", errorMessage(t, resp))
	})

	t.Run("should report missing transaction before validating body", func(t *testing.T) {
		resp := makeJSONRequest(t, "PUT", "/api/transactions/"+uuid.NewString(), map[string]interface{}{"amount": -5})
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Transaction not found", errorMessage(t, resp))
	})

	t.Run("should reject invalid ID", func(t *testing.T) {
		resp := makeJSONRequest(t, "PUT", "/api/transactions/abc", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Invalid transaction ID", errorMessage(t, resp))
	})
}

// TestDeleteTransaction tests the DELETE /api/transactions/:id endpoint
func TestDeleteTransaction(t *testing.T) {
	cleanupTestData()
	transactionID := createTestTransaction(t, "expense", "5", "2025-03-01", "Snack", "")

	t.Run("should delete transaction", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/transactions/"+transactionID, nil)
		assert.Equal(t, http.StatusOK, resp.Code)

		resp = makeRequest("GET", "/api/transactions", nil)
		assert.JSONEq(t, `[]`, resp.Body.String())
	})

	t.Run("should return 404 when missing", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/transactions/"+transactionID, nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Transaction not found", errorMessage(t, resp))
	})

	t.Run("should reject invalid ID", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/transactions/invalid-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Invalid transaction ID format", errorMessage(t, resp))
	})
}
