package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"financetracker/db/generated"
	"financetracker/logging"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// maxOccurrencesPerRun bounds how many missed occurrences of one template a
// single run posts. The rest are posted by the following runs.
const maxOccurrencesPerRun = 1000

// advanceDueDate moves d forward by one period of frequency. Monthly and
// yearly steps land on the last day of the target month when d's day does
// not exist there (Jan 31 -> Feb 28).
func advanceDueDate(d time.Time, frequency string) (time.Time, error) {
	switch frequency {
	case "daily":
		return d.AddDate(0, 0, 1), nil
	case "weekly":
		return d.AddDate(0, 0, 7), nil
	case "monthly":
		return addMonthsClamped(d, 1), nil
	case "yearly":
		return addMonthsClamped(d, 12), nil
	}
	return d, fmt.Errorf("unknown frequency %q", frequency)
}

func addMonthsClamped(d time.Time, months int) time.Time {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()).AddDate(0, months, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

// recurringRunMu keeps the scheduler and the process endpoint from running
// at the same time in one process. Across processes the row lock taken in
// postOccurrences does the same job.
var recurringRunMu sync.Mutex

// processDueRecurring posts one transaction for every occurrence of an active
// template due on or before at's date, then moves the template's next due
// date past that day.
func processDueRecurring(ctx context.Context, at time.Time) (ProcessResult, error) {
	recurringRunMu.Lock()
	defer recurringRunMu.Unlock()

	result := ProcessResult{Created: make([]Transaction, 0)}
	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)

	due, err := queries.GetDueRecurringTransactions(ctx, pgtype.Date{Time: day, Valid: true})
	if err != nil {
		return result, fmt.Errorf("fetching due recurring transactions: %w", err)
	}
	if len(due) == 0 {
		return result, nil
	}

	var idx *categoryIndex
	if categories, err := queries.GetCategories(ctx); err == nil {
		idx = newCategoryIndex(categories)
	} else {
		logging.L().Warn("loading categories for recurring run", zap.Error(err))
	}

	logger := logging.L().Named("recurring")
	var errs []error
	for _, r := range due {
		created, posted, err := postOccurrences(ctx, r.ID, day, idx)
		if err != nil {
			logger.Error("processing recurring transaction",
				zap.String("id", uuidString(r.ID)),
				zap.String("description", r.Description),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
		if !posted {
			continue
		}
		result.Created = append(result.Created, created...)
		result.Processed++
	}

	if metrics != nil {
		metrics.recurringPosted.Add(float64(len(result.Created)))
	}
	logger.Info("recurring run finished",
		zap.Int("templates", result.Processed),
		zap.Int("created", len(result.Created)),
	)
	return result, errors.Join(errs...)
}

// postOccurrences locks template id and, if it is still due on day, posts
// its missed occurrences and advances next_due_date in one transaction.
// posted is false when the template was already handled or is locked by
// another run. On error nothing is posted.
func postOccurrences(ctx context.Context, id pgtype.UUID, day time.Time, idx *categoryIndex) (created []Transaction, posted bool, err error) {
	err = ledgerTx.InTx(ctx, func(q generated.Querier) error {
		created = nil

		r, err := q.LockDueRecurringTransaction(ctx, generated.LockDueRecurringTransactionParams{
			ID:          id,
			NextDueDate: pgtype.Date{Time: day, Valid: true},
		})
		if err != nil {
			return err
		}
		if _, err := advanceDueDate(r.NextDueDate.Time, r.Frequency); err != nil {
			return err
		}

		next := r.NextDueDate.Time
		for i := 0; !next.After(day) && i < maxOccurrencesPerRun; i++ {
			t, err := q.CreateTransaction(ctx, generated.CreateTransactionParams{
				Amount:          r.Amount,
				Description:     r.Description,
				CategoryID:      r.CategoryID,
				Type:            r.Type,
				TransactionDate: pgtype.Date{Time: next, Valid: true},
			})
			if err != nil {
				return fmt.Errorf("creating occurrence %s: %w", next.Format(dateLayout), err)
			}
			created = append(created, convertTransaction(t, idx))

			if next, err = advanceDueDate(next, r.Frequency); err != nil {
				return err
			}
		}

		if err := q.UpdateRecurringNextDueDate(ctx, generated.UpdateRecurringNextDueDateParams{
			ID:          r.ID,
			NextDueDate: pgtype.Date{Time: next, Valid: true},
		}); err != nil {
			return fmt.Errorf("updating next due date: %w", err)
		}
		return nil
	})

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	return created, true, nil
}

// runRecurringScheduler processes due templates now and then every interval
// until ctx is cancelled.
func runRecurringScheduler(ctx context.Context, interval time.Duration) {
	logger := logging.L().Named("recurring")
	logger.Info("recurring scheduler started", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := processDueRecurring(ctx, now()); err != nil && ctx.Err() == nil {
			logger.Error("recurring run failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			logger.Info("recurring scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

// Recurring handler functions

// @Summary Get recurring transactions
// @Description Retrieve all recurring transaction templates, newest first
// @Tags recurring
// @Produce json
// @Success 200 {array} RecurringTransaction "List of recurring transactions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/recurring [get]
func getRecurringTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	dbRecurring, err := queries.GetRecurringTransactions(ctx)
	if err != nil {
		logging.L().Error("fetching recurring transactions", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	categories, err := queries.GetCategories(ctx)
	if err != nil {
		logging.L().Error("fetching categories", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	idx := newCategoryIndex(categories)

	recurring := make([]RecurringTransaction, 0, len(dbRecurring))
	for _, r := range dbRecurring {
		recurring = append(recurring, convertRecurring(r, idx))
	}

	c.JSON(http.StatusOK, recurring)
}

// @Summary Create recurring transaction
// @Description Create a template that posts a transaction every day, week, month or year
// @Tags recurring
// @Accept json
// @Produce json
// @Param recurring body RecurringTransactionRequest true "Recurring transaction data"
// @Success 201 {object} RecurringTransaction "Created recurring transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/recurring [post]
func createRecurringTransaction(c *gin.Context) {
	var request RecurringTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	request.Description = strings.TrimSpace(request.Description)
	if request.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description cannot be empty"})
		return
	}
	for _, err := range []error{
		validateAmount(request.Amount),
		validateType(request.Type),
		validateFrequency(request.Frequency),
	} {
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	nextDue, err := parseDate(request.NextDueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	categoryID, err := parseOptionalUUID(request.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	ctx := c.Request.Context()
	dbRecurring, err := queries.CreateRecurringTransaction(ctx, generated.CreateRecurringTransactionParams{
		Amount:      decimalToNumeric(request.Amount),
		Description: request.Description,
		CategoryID:  categoryID,
		Type:        request.Type,
		Frequency:   request.Frequency,
		NextDueDate: nextDue,
		IsActive:    isActive,
	})
	if err != nil {
		logging.L().Error("creating recurring transaction", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertRecurring(dbRecurring, recurringCategory(ctx, categoryID)))
}

// recurringCategory indexes the single category a template refers to
func recurringCategory(ctx context.Context, id pgtype.UUID) *categoryIndex {
	if !id.Valid {
		return nil
	}
	category, err := queries.GetCategoryByID(ctx, id)
	if err != nil {
		logging.L().Warn("loading recurring transaction category", zap.Error(err))
		return nil
	}
	return newCategoryIndex([]generated.Category{category})
}

// @Summary Pause or resume recurring transaction
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path string true "Recurring transaction ID"
// @Param active body object{is_active=bool} true "New state"
// @Success 200 {object} RecurringTransaction "Updated recurring transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Recurring transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/recurring/{id}/active [put]
func setRecurringTransactionActive(c *gin.Context) {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurring transaction ID"})
		return
	}

	var request struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active is required"})
		return
	}

	dbRecurring, err := queries.SetRecurringTransactionActive(c.Request.Context(), generated.SetRecurringTransactionActiveParams{
		ID:       id,
		IsActive: *request.IsActive,
	})
	if err != nil {
		logging.L().Error("updating recurring transaction", zap.String("id", c.Param("id")), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertRecurring(dbRecurring, recurringCategory(c.Request.Context(), dbRecurring.CategoryID)))
}

// @Summary Delete recurring transaction
// @Tags recurring
// @Produce json
// @Param id path string true "Recurring transaction ID"
// @Success 200 {object} map[string]interface{} "Recurring transaction deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Recurring transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/recurring/{id} [delete]
func deleteRecurringTransaction(c *gin.Context) {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurring transaction ID"})
		return
	}

	deleted, err := queries.DeleteRecurringTransaction(c.Request.Context(), id)
	if err != nil {
		logging.L().Error("deleting recurring transaction", zap.String("id", c.Param("id")), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurring transaction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recurring transaction deleted successfully"})
}

// @Summary Process due recurring transactions
// @Description Post every occurrence that is due today or earlier and advance the templates
// @Tags recurring
// @Produce json
// @Success 200 {object} ProcessResult "Created transactions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/recurring/process [post]
func processRecurringTransactions(c *gin.Context) {
	result, err := processDueRecurring(c.Request.Context(), now())
	if err != nil {
		logging.L().Error("processing recurring transactions", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message, "processed": result.Processed, "created": result.Created})
		return
	}
	c.JSON(http.StatusOK, result)
}
