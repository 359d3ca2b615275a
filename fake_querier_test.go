package main

import (
	"context"
	"sort"
	"sync"
	"time"

	"financetracker/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// fakeQuerier is an in-memory generated.Querier that mimics the constraints
// of the schema in db/migrations.
type fakeQuerier struct {
	mu sync.Mutex

	// err, when set, is returned by every call
	err error
	// dueUpdateErr, when set, is returned by UpdateRecurringNextDueDate
	dueUpdateErr error

	// txMu serializes InTx the way row locks serialize writers
	txMu sync.Mutex

	clock        time.Time
	categories   []generated.Category
	transactions []generated.Transaction
	recurring    []generated.RecurringTransaction
	reminders    []generated.Reminder
}

var (
	_ generated.Querier = (*fakeQuerier)(nil)
	_ transactor        = (*fakeQuerier)(nil)
)

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{clock: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeQuerier) setError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeQuerier) setDueUpdateError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dueUpdateErr = err
}

// InTx runs fn against f and restores every table when fn fails
func (f *fakeQuerier) InTx(ctx context.Context, fn func(q generated.Querier) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	f.mu.Lock()
	categories := append([]generated.Category(nil), f.categories...)
	transactions := append([]generated.Transaction(nil), f.transactions...)
	recurring := append([]generated.RecurringTransaction(nil), f.recurring...)
	reminders := append([]generated.Reminder(nil), f.reminders...)
	f.mu.Unlock()

	if err := fn(f); err != nil {
		f.mu.Lock()
		f.categories, f.transactions, f.recurring, f.reminders = categories, transactions, recurring, reminders
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeQuerier) tick() pgtype.Timestamptz {
	f.clock = f.clock.Add(time.Second)
	return pgtype.Timestamptz{Time: f.clock, Valid: true}
}

func newID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint", ConstraintName: constraint}
}

func foreignKeyViolation() error {
	return &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint", ConstraintName: "transactions_category_id_fkey"}
}

func (f *fakeQuerier) categoryExists(id pgtype.UUID) bool {
	if !id.Valid {
		return true
	}
	for _, c := range f.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Categories

func (f *fakeQuerier) GetCategories(ctx context.Context) ([]generated.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := append([]generated.Category(nil), f.categories...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeQuerier) GetCategoryByID(ctx context.Context, id pgtype.UUID) (generated.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.Category{}, f.err
	}
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return generated.Category{}, pgx.ErrNoRows
}

func (f *fakeQuerier) CreateCategory(ctx context.Context, arg generated.CreateCategoryParams) (generated.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.Category{}, f.err
	}
	for _, c := range f.categories {
		if c.Name == arg.Name {
			return generated.Category{}, uniqueViolation("categories_name_key")
		}
	}
	c := generated.Category{ID: newID(), Name: arg.Name, Type: arg.Type, Color: arg.Color, CreatedAt: f.tick()}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeQuerier) UpdateCategory(ctx context.Context, arg generated.UpdateCategoryParams) (generated.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.Category{}, f.err
	}
	for _, c := range f.categories {
		if c.Name == arg.Name && c.ID != arg.ID {
			return generated.Category{}, uniqueViolation("categories_name_key")
		}
	}
	for i, c := range f.categories {
		if c.ID == arg.ID {
			c.Name, c.Type, c.Color = arg.Name, arg.Type, arg.Color
			f.categories[i] = c
			return c, nil
		}
	}
	return generated.Category{}, pgx.ErrNoRows
}

func (f *fakeQuerier) DeleteCategory(ctx context.Context, id pgtype.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	for i, c := range f.categories {
		if c.ID != id {
			continue
		}
		f.categories = append(f.categories[:i], f.categories[i+1:]...)
		for j := range f.transactions {
			if f.transactions[j].CategoryID == id {
				f.transactions[j].CategoryID = pgtype.UUID{}
			}
		}
		for j := range f.recurring {
			if f.recurring[j].CategoryID == id {
				f.recurring[j].CategoryID = pgtype.UUID{}
			}
		}
		return 1, nil
	}
	return 0, nil
}

// Transactions

func (f *fakeQuerier) GetTransactions(ctx context.Context) ([]generated.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := append([]generated.Transaction(nil), f.transactions...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].TransactionDate.Time.Equal(out[j].TransactionDate.Time) {
			return out[i].TransactionDate.Time.After(out[j].TransactionDate.Time)
		}
		return out[i].CreatedAt.Time.After(out[j].CreatedAt.Time)
	})
	return out, nil
}

func (f *fakeQuerier) GetTransactionByID(ctx context.Context, id pgtype.UUID) (generated.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.Transaction{}, f.err
	}
	for _, t := range f.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return generated.Transaction{}, pgx.ErrNoRows
}

func (f *fakeQuerier) CreateTransaction(ctx context.Context, arg generated.CreateTransactionParams) (generated.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.Transaction{}, f.err
	}
	if !f.categoryExists(arg.CategoryID) {
		return generated.Transaction{}, foreignKeyViolation()
	}
	ts := f.tick()
	t := generated.Transaction{
		ID:              newID(),
		Amount:          arg.Amount,
		Description:     arg.Description,
		CategoryID:      arg.CategoryID,
		Type:            arg.Type,
		TransactionDate: arg.TransactionDate,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	f.transactions = append(f.transactions, t)
	return t, nil
}

func (f *fakeQuerier) UpdateTransaction(ctx context.Context, arg generated.UpdateTransactionParams) (generated.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.Transaction{}, f.err
	}
	if !f.categoryExists(arg.CategoryID) {
		return generated.Transaction{}, foreignKeyViolation()
	}
	for i, t := range f.transactions {
		if t.ID != arg.ID {
			continue
		}
		t.Amount = arg.Amount
		t.Description = arg.Description
		t.CategoryID = arg.CategoryID
		t.Type = arg.Type
		t.TransactionDate = arg.TransactionDate
		t.UpdatedAt = f.tick()
		f.transactions[i] = t
		return t, nil
	}
	return generated.Transaction{}, pgx.ErrNoRows
}

func (f *fakeQuerier) DeleteTransaction(ctx context.Context, id pgtype.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// Recurring transactions

func (f *fakeQuerier) GetRecurringTransactions(ctx context.Context) ([]generated.RecurringTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := append([]generated.RecurringTransaction(nil), f.recurring...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Time.After(out[j].CreatedAt.Time) })
	return out, nil
}

func (f *fakeQuerier) GetDueRecurringTransactions(ctx context.Context, nextDueDate pgtype.Date) ([]generated.RecurringTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []generated.RecurringTransaction
	for _, r := range f.recurring {
		if r.IsActive && !r.NextDueDate.Time.After(nextDueDate.Time) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NextDueDate.Time.Before(out[j].NextDueDate.Time) })
	return out, nil
}

func (f *fakeQuerier) LockDueRecurringTransaction(ctx context.Context, arg generated.LockDueRecurringTransactionParams) (generated.RecurringTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.RecurringTransaction{}, f.err
	}
	for _, r := range f.recurring {
		if r.ID == arg.ID && r.IsActive && !r.NextDueDate.Time.After(arg.NextDueDate.Time) {
			return r, nil
		}
	}
	return generated.RecurringTransaction{}, pgx.ErrNoRows
}

func (f *fakeQuerier) CreateRecurringTransaction(ctx context.Context, arg generated.CreateRecurringTransactionParams) (generated.RecurringTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.RecurringTransaction{}, f.err
	}
	if !f.categoryExists(arg.CategoryID) {
		return generated.RecurringTransaction{}, foreignKeyViolation()
	}
	r := generated.RecurringTransaction{
		ID:          newID(),
		Amount:      arg.Amount,
		Description: arg.Description,
		CategoryID:  arg.CategoryID,
		Type:        arg.Type,
		Frequency:   arg.Frequency,
		NextDueDate: arg.NextDueDate,
		IsActive:    arg.IsActive,
		CreatedAt:   f.tick(),
	}
	f.recurring = append(f.recurring, r)
	return r, nil
}

func (f *fakeQuerier) UpdateRecurringNextDueDate(ctx context.Context, arg generated.UpdateRecurringNextDueDateParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.dueUpdateErr != nil {
		return f.dueUpdateErr
	}
	for i := range f.recurring {
		if f.recurring[i].ID == arg.ID {
			f.recurring[i].NextDueDate = arg.NextDueDate
		}
	}
	return nil
}

func (f *fakeQuerier) SetRecurringTransactionActive(ctx context.Context, arg generated.SetRecurringTransactionActiveParams) (generated.RecurringTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.RecurringTransaction{}, f.err
	}
	for i := range f.recurring {
		if f.recurring[i].ID == arg.ID {
			f.recurring[i].IsActive = arg.IsActive
			return f.recurring[i], nil
		}
	}
	return generated.RecurringTransaction{}, pgx.ErrNoRows
}

func (f *fakeQuerier) DeleteRecurringTransaction(ctx context.Context, id pgtype.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	for i, r := range f.recurring {
		if r.ID == id {
			f.recurring = append(f.recurring[:i], f.recurring[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// Reminders

func (f *fakeQuerier) GetReminders(ctx context.Context) ([]generated.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := append([]generated.Reminder(nil), f.reminders...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Time.Before(out[j].DueDate.Time) })
	return out, nil
}

func (f *fakeQuerier) CreateReminder(ctx context.Context, arg generated.CreateReminderParams) (generated.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.Reminder{}, f.err
	}
	r := generated.Reminder{
		ID:          newID(),
		Title:       arg.Title,
		Description: arg.Description,
		DueDate:     arg.DueDate,
		CreatedAt:   f.tick(),
	}
	f.reminders = append(f.reminders, r)
	return r, nil
}

func (f *fakeQuerier) CompleteReminder(ctx context.Context, id pgtype.UUID) (generated.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return generated.Reminder{}, f.err
	}
	for i := range f.reminders {
		if f.reminders[i].ID == id {
			f.reminders[i].IsCompleted = true
			return f.reminders[i], nil
		}
	}
	return generated.Reminder{}, pgx.ErrNoRows
}

func (f *fakeQuerier) DeleteReminder(ctx context.Context, id pgtype.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	for i, r := range f.reminders {
		if r.ID == id {
			f.reminders = append(f.reminders[:i], f.reminders[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
