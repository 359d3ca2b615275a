package main

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction represents a financial transaction
type Transaction struct {
	ID              string           `json:"id"`
	Amount          decimal.Decimal  `json:"amount" swaggertype:"number"`
	Description     string           `json:"description"`
	Type            string           `json:"type"`
	TransactionDate string           `json:"transaction_date"`
	CategoryID      *string          `json:"category_id"`
	Category        *CategorySummary `json:"category"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// TransactionRequest is the body of create and update transaction calls
type TransactionRequest struct {
	Amount          decimal.Decimal `json:"amount" swaggertype:"number"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	TransactionDate string          `json:"transaction_date"`
	CategoryID      *string         `json:"category_id"`
}

// Category represents a transaction category
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// CategorySummary is the category embedded in a transaction
type CategorySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryRequest is the body of create and update category calls
type CategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// RecurringTransaction is a template that posts a transaction on a schedule
type RecurringTransaction struct {
	ID          string           `json:"id"`
	Amount      decimal.Decimal  `json:"amount" swaggertype:"number"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Frequency   string           `json:"frequency"`
	NextDueDate string           `json:"next_due_date"`
	IsActive    bool             `json:"is_active"`
	CategoryID  *string          `json:"category_id"`
	Category    *CategorySummary `json:"category"`
	CreatedAt   time.Time        `json:"created_at"`
}

// RecurringTransactionRequest is the body of a create recurring call
type RecurringTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Frequency   string          `json:"frequency"`
	NextDueDate string          `json:"next_due_date"`
	CategoryID  *string         `json:"category_id"`
	IsActive    *bool           `json:"is_active"`
}

// Reminder is a dated to-do item
type Reminder struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     string    `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReminderRequest is the body of a create reminder call
type ReminderRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"`
}

// ProcessResult reports what a recurring processing run posted
type ProcessResult struct {
	Processed int           `json:"processed"`
	Created   []Transaction `json:"created"`
}
