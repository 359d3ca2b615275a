package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"financetracker/analytics"
	"financetracker/db/generated"
	"financetracker/logging"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Transaction handler functions

// @Summary Get all transactions
// @Description Retrieve all transactions, newest first, with their category
// @Tags transactions
// @Produce json
// @Success 200 {array} Transaction "List of transactions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [get]
func getTransactions(c *gin.Context) {
	dbTransactions, idx, err := loadLedger(c.Request.Context())
	if err != nil {
		logging.L().Error("fetching transactions", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	transactions := make([]Transaction, 0, len(dbTransactions))
	for _, t := range dbTransactions {
		transactions = append(transactions, convertTransaction(t, idx))
	}

	c.JSON(http.StatusOK, transactions)
}

type transactionFields struct {
	amount     pgtype.Numeric
	date       pgtype.Date
	categoryID pgtype.UUID
}

// bindTransaction reads and validates a transaction body
func bindTransaction(c *gin.Context) (TransactionRequest, transactionFields, bool) {
	var request TransactionRequest
	var fields transactionFields
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return request, fields, false
	}

	fail := func(err error) (TransactionRequest, transactionFields, bool) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return request, fields, false
	}

	request.Description = strings.TrimSpace(request.Description)
	if request.Description == "" {
		return fail(fmt.Errorf("description cannot be empty"))
	}
	if err := validateAmount(request.Amount); err != nil {
		return fail(err)
	}
	if err := validateType(request.Type); err != nil {
		return fail(err)
	}
	date, err := parseDate(request.TransactionDate)
	if err != nil {
		return fail(err)
	}
	categoryID, err := parseOptionalUUID(request.CategoryID)
	if err != nil {
		return fail(fmt.Errorf("invalid category ID"))
	}

	fields = transactionFields{
		amount:     decimalToNumeric(request.Amount),
		date:       date,
		categoryID: categoryID,
	}
	return request, fields, true
}

// respondTransaction writes t with its category embedded
func respondTransaction(c *gin.Context, status int, t generated.Transaction) {
	var idx *categoryIndex
	if t.CategoryID.Valid {
		category, err := queries.GetCategoryByID(c.Request.Context(), t.CategoryID)
		if err == nil {
			idx = newCategoryIndex([]generated.Category{category})
		} else {
			logging.L().Warn("loading transaction category", zap.Error(err))
		}
	}
	c.JSON(status, convertTransaction(t, idx))
}

// @Summary Create transaction
// @Description Record a new income or expense
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body TransactionRequest true "Transaction data"
// @Success 201 {object} Transaction "Created transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [post]
func createTransaction(c *gin.Context) {
	request, fields, ok := bindTransaction(c)
	if !ok {
		return
	}

	dbTransaction, err := queries.CreateTransaction(c.Request.Context(), generated.CreateTransactionParams{
		Amount:          fields.amount,
		Description:     request.Description,
		CategoryID:      fields.categoryID,
		Type:            request.Type,
		TransactionDate: fields.date,
	})
	if err != nil {
		logging.L().Error("creating transaction", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	respondTransaction(c, http.StatusCreated, dbTransaction)
}

// @Summary Update transaction
// @Description Replace every field of an existing transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body TransactionRequest true "Transaction data"
// @Success 200 {object} Transaction "Updated transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [put]
func updateTransaction(c *gin.Context) {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	if _, err := queries.GetTransactionByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logging.L().Error("fetching transaction", zap.String("id", c.Param("id")), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	request, fields, ok := bindTransaction(c)
	if !ok {
		return
	}

	dbTransaction, err := queries.UpdateTransaction(c.Request.Context(), generated.UpdateTransactionParams{
		ID:              id,
		Amount:          fields.amount,
		Description:     request.Description,
		CategoryID:      fields.categoryID,
		Type:            request.Type,
		TransactionDate: fields.date,
	})
	if err != nil {
		logging.L().Error("updating transaction", zap.String("id", c.Param("id")), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	respondTransaction(c, http.StatusOK, dbTransaction)
}

// @Summary Delete single transaction
// @Description Delete a specific transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{} "Transaction deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/{id} [delete]
func deleteTransaction(c *gin.Context) {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID format"})
		return
	}

	deleted, err := queries.DeleteTransaction(c.Request.Context(), id)
	if err != nil {
		logging.L().Error("deleting transaction", zap.String("id", c.Param("id")), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// @Summary Export transactions
// @Description Download every transaction as CSV (Date,Description,Category,Type,Amount)
// @Tags transactions
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/export [get]
func exportTransactions(c *gin.Context) {
	dbTransactions, idx, err := loadLedger(c.Request.Context())
	if err != nil {
		logging.L().Error("exporting transactions", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	fileName := fmt.Sprintf("transactions_%s.csv", today().Format(dateLayout))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Status(http.StatusOK)

	if err := analytics.WriteCSV(c.Writer, toAnalytics(dbTransactions, idx)); err != nil {
		logging.L().Error("writing csv export", zap.Error(err))
	}
}

// @Summary Import transactions
// @Description Upload a CSV file in the export format. Categories are matched by name; rows that cannot be read are skipped and counted.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file to upload"
// @Success 200 {object} map[string]interface{} "Import result - message, transactions array and skipped_rows count"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions/import [post]
func importTransactions(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading CSV file"})
		return
	}

	ctx := c.Request.Context()
	categories, err := queries.GetCategories(ctx)
	if err != nil {
		logging.L().Error("loading categories for import", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	idx := newCategoryIndex(categories)

	transactions := make([]Transaction, 0)
	skippedRows := 0

	// Skip header row if present
	start := 0
	if len(records) > 0 && len(records[0]) > 0 && strings.EqualFold(strings.TrimSpace(records[0][0]), "Date") {
		start = 1
	}

	for i := start; i < len(records); i++ {
		params, err := importRow(records[i], idx)
		if err != nil {
			logging.L().Debug("skipping csv row", zap.String("file", header.Filename), zap.Int("row", i+1), zap.Error(err))
			skippedRows++
			continue
		}

		dbTransaction, err := queries.CreateTransaction(ctx, params)
		if err != nil {
			logging.L().Error("inserting imported transaction", zap.Int("row", i+1), zap.Error(err))
			skippedRows++
			continue
		}
		transactions = append(transactions, convertTransaction(dbTransaction, idx))
	}

	if metrics != nil {
		metrics.importedRows.WithLabelValues("imported").Add(float64(len(transactions)))
		metrics.importedRows.WithLabelValues("skipped").Add(float64(skippedRows))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "CSV imported successfully",
		"transactions": transactions,
		"skipped_rows": skippedRows,
	})
}

// importRow turns one Date,Description,Category,Type,Amount record into insert params
func importRow(record []string, idx *categoryIndex) (generated.CreateTransactionParams, error) {
	var params generated.CreateTransactionParams
	if len(record) < 5 {
		return params, fmt.Errorf("expected 5 columns, got %d", len(record))
	}

	date, err := parseDate(record[0])
	if err != nil {
		return params, err
	}
	description := strings.TrimSpace(record[1])
	if description == "" {
		return params, fmt.Errorf("description cannot be empty")
	}
	typ := strings.ToLower(strings.TrimSpace(record[3]))
	if err := validateType(typ); err != nil {
		return params, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil {
		return params, fmt.Errorf("invalid amount %q", record[4])
	}
	if err := validateAmount(amount); err != nil {
		return params, err
	}

	params = generated.CreateTransactionParams{
		Amount:          decimalToNumeric(amount),
		Description:     description,
		Type:            typ,
		TransactionDate: date,
	}
	if category := idx.mapName(record[2]); category != nil {
		params.CategoryID = category.ID
	}
	return params, nil
}
