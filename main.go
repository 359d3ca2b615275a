package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financetracker/db"
	"financetracker/db/generated"
	_ "financetracker/docs"
	"financetracker/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var (
	dbPool  *pgxpool.Pool
	queries generated.Querier
	metrics *appMetrics

	// ledgerTx runs multi-statement writes atomically
	ledgerTx transactor

	// now is the clock used for "today"; tests replace it
	now = time.Now
)

// @title Finance Tracker API
// @version 1.0
// @description Personal finance tracker: transactions, categories, recurring transactions, reminders and analytics.
// @BasePath /
func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logging.SetGlobal(logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err = connectDatabase(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to database after retries", zap.Error(err))
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		logger.Info("running database migrations")
		if err := runMigrations(cfg.connString()); err != nil {
			logger.Fatal("error running migrations", zap.Error(err))
		}
		if version, dirty, err := getMigrationVersion(cfg.connString()); err == nil {
			logger.Info("database migrations completed", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	}

	metrics = newAppMetrics()
	breaker := newBreakerQuerier(generated.New(dbPool), cfg.Breaker, metrics)
	queries = breaker
	ledgerTx = breaker.guard(poolTransactor{pool: dbPool})
	dashboardMonths = cfg.DashboardMonths

	r := setupRouter(cfg, logger)

	if cfg.RecurringEnabled {
		go runRecurringScheduler(ctx, cfg.RecurringInterval)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// connectDatabase opens the pool and retries until the database answers
func connectDatabase(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	logger := logging.L()
	var lastErr error

	for i := 0; i < cfg.ConnectRetries; i++ {
		pool, err := pgxpool.New(ctx, cfg.connString())
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				logger.Info("successfully connected to database")
				return pool, nil
			}
			pool.Close()
		}

		lastErr = err
		logger.Warn("database not ready", zap.Int("attempt", i+1), zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, lastErr
}

func newMigrate(connString string) (*migrate.Migrate, *sql.DB, error) {
	sqlDB, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, nil, fmt.Errorf("opening migration connection: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("creating postgres driver: %w", err)
	}

	source, err := iofs.New(db.Migrations, "migrations")
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("reading embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("creating migrate instance: %w", err)
	}
	return m, sqlDB, nil
}

// runMigrations applies all pending up migrations
func runMigrations(connString string) error {
	m, sqlDB, err := newMigrate(connString)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// getMigrationVersion reports the current schema version
func getMigrationVersion(connString string) (uint, bool, error) {
	m, sqlDB, err := newMigrate(connString)
	if err != nil {
		return 0, false, err
	}
	defer sqlDB.Close()

	return m.Version()
}

// setupRouter registers middleware and every route
func setupRouter(cfg Config, logger *zap.Logger) *gin.Engine {
	if metrics == nil {
		metrics = newAppMetrics()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.GinMiddleware(logger))
	r.Use(metrics.middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.GET("/health", healthCheck)
	r.GET("/metrics", metrics.handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/transactions", getTransactions)
		api.POST("/transactions", createTransaction)
		api.GET("/transactions/export", exportTransactions)
		api.POST("/transactions/import", importTransactions)
		api.PUT("/transactions/:id", updateTransaction)
		api.DELETE("/transactions/:id", deleteTransaction)

		api.GET("/categories", getCategories)
		api.POST("/categories", createCategory)
		api.PUT("/categories/:id", updateCategory)
		api.DELETE("/categories/:id", deleteCategory)

		api.GET("/recurring", getRecurringTransactions)
		api.POST("/recurring", createRecurringTransaction)
		api.POST("/recurring/process", processRecurringTransactions)
		api.PUT("/recurring/:id/active", setRecurringTransactionActive)
		api.DELETE("/recurring/:id", deleteRecurringTransaction)

		api.GET("/reminders", getReminders)
		api.POST("/reminders", createReminder)
		api.PUT("/reminders/:id/complete", completeReminder)
		api.DELETE("/reminders/:id", deleteReminder)

		api.GET("/analytics/monthly", getMonthlyAnalytics)
		api.GET("/analytics/categories", getCategoryAnalytics)
		api.GET("/analytics/summary", getSummaryAnalytics)
		api.GET("/dashboard", getDashboard)
	}

	return r
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /health [get]
func healthCheck(c *gin.Context) {
	if dbPool != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
