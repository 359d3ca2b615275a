package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"financetracker/analytics"
	"financetracker/db/generated"
	"financetracker/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// dashboardMonths is the window used when a request does not pass ?months
var dashboardMonths = analytics.DefaultMonths

// maxMonths is the largest ?months a request may ask for
const maxMonths = 1200

// loadLedger fetches transactions and categories concurrently
func loadLedger(ctx context.Context) ([]generated.Transaction, *categoryIndex, error) {
	var (
		transactions []generated.Transaction
		categories   []generated.Category
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = queries.GetTransactions(ctx)
		if err != nil {
			return fmt.Errorf("fetching transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = queries.GetCategories(ctx)
		if err != nil {
			return fmt.Errorf("fetching categories: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return transactions, newCategoryIndex(categories), nil
}

// loadAnalyticsInput returns every transaction in aggregator form
func loadAnalyticsInput(c *gin.Context) ([]analytics.Transaction, bool) {
	transactions, idx, err := loadLedger(c.Request.Context())
	if err != nil {
		logging.L().Error("loading analytics input", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return nil, false
	}
	return toAnalytics(transactions, idx), true
}

// monthsParam reads ?months, falling back to the configured window
func monthsParam(c *gin.Context) (int, bool) {
	raw := c.Query("months")
	if raw == "" {
		return dashboardMonths, true
	}
	months, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "months must be an integer"})
		return 0, false
	}
	if months > maxMonths {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("months must be at most %d", maxMonths)})
		return 0, false
	}
	return months, true
}

// @Summary Monthly income and expense series
// @Description Income, expense and net for each of the last N calendar months, oldest first
// @Tags analytics
// @Produce json
// @Param months query int false "Number of months (default 6)"
// @Success 200 {array} analytics.MonthlyDataPoint "Monthly series"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/analytics/monthly [get]
func getMonthlyAnalytics(c *gin.Context) {
	months, ok := monthsParam(c)
	if !ok {
		return
	}
	transactions, ok := loadAnalyticsInput(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.MonthlySeries(transactions, months, now()))
}

// @Summary Expense breakdown by category
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.CategoryBreakdownEntry "Category totals"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/analytics/categories [get]
func getCategoryAnalytics(c *gin.Context) {
	transactions, ok := loadAnalyticsInput(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.CategoryBreakdown(transactions))
}

// @Summary Summary statistics
// @Description Balance over all time and the current month compared with the previous one
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.SummaryStats "Summary"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/analytics/summary [get]
func getSummaryAnalytics(c *gin.Context) {
	transactions, ok := loadAnalyticsInput(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.Summary(transactions, now()))
}

// @Summary Dashboard
// @Description Monthly series, category breakdown and summary in one response
// @Tags analytics
// @Produce json
// @Param months query int false "Number of months (default 6)"
// @Success 200 {object} analytics.Dashboard "Dashboard"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/dashboard [get]
func getDashboard(c *gin.Context) {
	months, ok := monthsParam(c)
	if !ok {
		return
	}
	transactions, ok := loadAnalyticsInput(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.BuildDashboard(transactions, months, now()))
}
