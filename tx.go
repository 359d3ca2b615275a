package main

import (
	"context"

	"financetracker/db/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// transactor runs fn against a Querier bound to one database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type transactor interface {
	InTx(ctx context.Context, fn func(q generated.Querier) error) error
}

type poolTransactor struct {
	pool *pgxpool.Pool
}

func (p poolTransactor) InTx(ctx context.Context, fn func(q generated.Querier) error) error {
	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		return fn(generated.New(p.pool).WithTx(tx))
	})
}
