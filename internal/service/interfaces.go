// Package service defines the contracts between the parsing engine, the
// persistence layer, and the CLI.
package service

import (
	"context"
	"time"

	"github.com/pennywiseai/smsledger/internal/model"
)

// TransactionFilter narrows transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Merchant  string
	Limit     int
}

// Storage is the persistence collaborator. It is the sole authority on
// "already processed": transaction uniqueness is enforced on the identity
// hash, so saving the same parse result twice is a no-op by contract.
type Storage interface {
	// Transaction operations.
	SaveTransactions(ctx context.Context, txns []model.ParsedTransaction) (int, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.ParsedTransaction, error)
	GetTransactionCount(ctx context.Context) (int, error)

	// Subscription aggregates.
	SaveSubscriptions(ctx context.Context, subs []model.Subscription) error
	GetSubscriptions(ctx context.Context) ([]model.Subscription, error)

	// Account balance snapshots.
	SaveBalanceUpdate(ctx context.Context, update *model.BalanceUpdate) error
	GetLatestBalance(ctx context.Context, bankName, accountLast4 string) (*model.BalanceUpdate, error)

	// Schema management.
	Migrate(ctx context.Context) error

	Close() error
}
