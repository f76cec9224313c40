package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pennywiseai/smsledger/internal/model"
)

// SaveBalanceUpdate records an account balance snapshot. Snapshots are
// append-only; the latest one wins for display purposes.
func (s *SQLiteStorage) SaveBalanceUpdate(ctx context.Context, update *model.BalanceUpdate) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if update == nil {
		return fmt.Errorf("%w: update", ErrNilParameter)
	}
	if err := validateString(update.AccountLast4, "accountLast4"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO balance_updates (bank_name, account_last4, balance, as_of)
		VALUES (?, ?, ?, ?)
	`, update.BankName, update.AccountLast4, update.Balance.String(), update.AsOf)
	if err != nil {
		return fmt.Errorf("failed to insert balance update: %w", err)
	}
	return nil
}

// GetLatestBalance returns the most recent snapshot for an account, or nil
// when none has been recorded.
func (s *SQLiteStorage) GetLatestBalance(ctx context.Context, bankName, accountLast4 string) (*model.BalanceUpdate, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(accountLast4, "accountLast4"); err != nil {
		return nil, err
	}

	var (
		update  model.BalanceUpdate
		balance string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT bank_name, account_last4, balance, as_of
		FROM balance_updates
		WHERE bank_name = ? AND account_last4 = ?
		ORDER BY as_of DESC
		LIMIT 1
	`, bankName, accountLast4).Scan(&update.BankName, &update.AccountLast4, &balance, &update.AsOf)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query balance: %w", err)
	}

	update.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("corrupt balance %q: %w", balance, err)
	}
	return &update, nil
}
