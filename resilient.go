package main

import (
	"context"
	"errors"

	"financetracker/db/generated"
	"financetracker/logging"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// breakerQuerier runs every query through a circuit breaker so a database
// outage turns into fast 503s instead of piling up requests on the pool.
type breakerQuerier struct {
	next generated.Querier
	cb   *gobreaker.CircuitBreaker
}

var _ generated.Querier = (*breakerQuerier)(nil)

func newBreakerQuerier(next generated.Querier, cfg BreakerConfig, metrics *appMetrics) *breakerQuerier {
	logger := logging.L().Named("breaker")
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:        "postgres",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			if metrics != nil {
				metrics.recordBreakerState(name, to)
			}
		},
	}

	return &breakerQuerier{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

// isBreakerSuccess treats answers from a healthy database as successes even
// when they are errors to the caller.
func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, pgx.ErrNoRows) || errors.Is(err, context.Canceled) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23 is integrity constraint violation, 22 is bad input data
		return len(pgErr.Code) == 5 && (pgErr.Code[:2] == "23" || pgErr.Code[:2] == "22")
	}
	return false
}

// guard returns a transactor whose transactions each count as one call
// against this breaker.
func (b *breakerQuerier) guard(next transactor) transactor {
	return breakerTransactor{next: next, cb: b.cb}
}

type breakerTransactor struct {
	next transactor
	cb   *gobreaker.CircuitBreaker
}

func (t breakerTransactor) InTx(ctx context.Context, fn func(q generated.Querier) error) error {
	_, err := t.cb.Execute(func() (interface{}, error) {
		return nil, t.next.InTx(ctx, fn)
	})
	return err
}

func execute[T any](b *breakerQuerier, fn func() (T, error)) (T, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if v, ok := result.(T); ok {
			return v, err
		}
		return zero, err
	}
	return result.(T), nil
}

func (b *breakerQuerier) CompleteReminder(ctx context.Context, id pgtype.UUID) (generated.Reminder, error) {
	return execute(b, func() (generated.Reminder, error) { return b.next.CompleteReminder(ctx, id) })
}

func (b *breakerQuerier) CreateCategory(ctx context.Context, arg generated.CreateCategoryParams) (generated.Category, error) {
	return execute(b, func() (generated.Category, error) { return b.next.CreateCategory(ctx, arg) })
}

func (b *breakerQuerier) CreateRecurringTransaction(ctx context.Context, arg generated.CreateRecurringTransactionParams) (generated.RecurringTransaction, error) {
	return execute(b, func() (generated.RecurringTransaction, error) { return b.next.CreateRecurringTransaction(ctx, arg) })
}

func (b *breakerQuerier) CreateReminder(ctx context.Context, arg generated.CreateReminderParams) (generated.Reminder, error) {
	return execute(b, func() (generated.Reminder, error) { return b.next.CreateReminder(ctx, arg) })
}

func (b *breakerQuerier) CreateTransaction(ctx context.Context, arg generated.CreateTransactionParams) (generated.Transaction, error) {
	return execute(b, func() (generated.Transaction, error) { return b.next.CreateTransaction(ctx, arg) })
}

func (b *breakerQuerier) DeleteCategory(ctx context.Context, id pgtype.UUID) (int64, error) {
	return execute(b, func() (int64, error) { return b.next.DeleteCategory(ctx, id) })
}

func (b *breakerQuerier) DeleteRecurringTransaction(ctx context.Context, id pgtype.UUID) (int64, error) {
	return execute(b, func() (int64, error) { return b.next.DeleteRecurringTransaction(ctx, id) })
}

func (b *breakerQuerier) DeleteReminder(ctx context.Context, id pgtype.UUID) (int64, error) {
	return execute(b, func() (int64, error) { return b.next.DeleteReminder(ctx, id) })
}

func (b *breakerQuerier) DeleteTransaction(ctx context.Context, id pgtype.UUID) (int64, error) {
	return execute(b, func() (int64, error) { return b.next.DeleteTransaction(ctx, id) })
}

func (b *breakerQuerier) GetCategories(ctx context.Context) ([]generated.Category, error) {
	return execute(b, func() ([]generated.Category, error) { return b.next.GetCategories(ctx) })
}

func (b *breakerQuerier) GetCategoryByID(ctx context.Context, id pgtype.UUID) (generated.Category, error) {
	return execute(b, func() (generated.Category, error) { return b.next.GetCategoryByID(ctx, id) })
}

func (b *breakerQuerier) GetDueRecurringTransactions(ctx context.Context, nextDueDate pgtype.Date) ([]generated.RecurringTransaction, error) {
	return execute(b, func() ([]generated.RecurringTransaction, error) {
		return b.next.GetDueRecurringTransactions(ctx, nextDueDate)
	})
}

func (b *breakerQuerier) GetRecurringTransactions(ctx context.Context) ([]generated.RecurringTransaction, error) {
	return execute(b, func() ([]generated.RecurringTransaction, error) { return b.next.GetRecurringTransactions(ctx) })
}

func (b *breakerQuerier) GetReminders(ctx context.Context) ([]generated.Reminder, error) {
	return execute(b, func() ([]generated.Reminder, error) { return b.next.GetReminders(ctx) })
}

func (b *breakerQuerier) GetTransactionByID(ctx context.Context, id pgtype.UUID) (generated.Transaction, error) {
	return execute(b, func() (generated.Transaction, error) { return b.next.GetTransactionByID(ctx, id) })
}

func (b *breakerQuerier) GetTransactions(ctx context.Context) ([]generated.Transaction, error) {
	return execute(b, func() ([]generated.Transaction, error) { return b.next.GetTransactions(ctx) })
}

func (b *breakerQuerier) LockDueRecurringTransaction(ctx context.Context, arg generated.LockDueRecurringTransactionParams) (generated.RecurringTransaction, error) {
	return execute(b, func() (generated.RecurringTransaction, error) { return b.next.LockDueRecurringTransaction(ctx, arg) })
}

func (b *breakerQuerier) SetRecurringTransactionActive(ctx context.Context, arg generated.SetRecurringTransactionActiveParams) (generated.RecurringTransaction, error) {
	return execute(b, func() (generated.RecurringTransaction, error) { return b.next.SetRecurringTransactionActive(ctx, arg) })
}

func (b *breakerQuerier) UpdateCategory(ctx context.Context, arg generated.UpdateCategoryParams) (generated.Category, error) {
	return execute(b, func() (generated.Category, error) { return b.next.UpdateCategory(ctx, arg) })
}

func (b *breakerQuerier) UpdateRecurringNextDueDate(ctx context.Context, arg generated.UpdateRecurringNextDueDateParams) error {
	_, err := execute(b, func() (struct{}, error) { return struct{}{}, b.next.UpdateRecurringNextDueDate(ctx, arg) })
	return err
}

func (b *breakerQuerier) UpdateTransaction(ctx context.Context, arg generated.UpdateTransactionParams) (generated.Transaction, error) {
	return execute(b, func() (generated.Transaction, error) { return b.next.UpdateTransaction(ctx, arg) })
}
