package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/service"
)

// SaveTransactions persists parse results with insert-or-ignore semantics
// keyed on the identity hash, and reports how many rows were actually
// inserted. Re-saving an already-recorded transaction is a silent no-op,
// which is what makes batch scans resumable.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, txns []model.ParsedTransaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransactions(txns); err != nil {
		return 0, err
	}
	if len(txns) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			hash, sender, bank_name, merchant, amount, type, currency,
			reference, account_last4, balance, credit_limit, is_from_card,
			from_account, to_account, sms_body, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range txns {
		txn := &txns[i]
		res, execErr := stmt.ExecContext(ctx,
			txn.Hash(),
			txn.Sender,
			txn.BankName,
			txn.Merchant,
			txn.Amount.String(),
			string(txn.Type),
			txn.Currency,
			txn.Reference,
			txn.AccountLast4,
			nullDecimal(txn.Balance),
			nullDecimal(txn.CreditLimit),
			txn.IsFromCard,
			txn.FromAccount,
			txn.ToAccount,
			txn.SMSBody,
			txn.Timestamp,
		)
		if execErr != nil {
			return 0, fmt.Errorf("failed to insert transaction: %w", execErr)
		}
		if n, raErr := res.RowsAffected(); raErr == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// GetTransactions returns transactions in chronological order, optionally
// filtered by date range and merchant.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.ParsedTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT sender, bank_name, merchant, amount, type, currency,
		       reference, account_last4, balance, credit_limit, is_from_card,
		       from_account, to_account, sms_body, timestamp
		FROM transactions`
	var conditions []string
	var args []any
	if filter.StartDate != nil {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "timestamp <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.Merchant != "" {
		conditions = append(conditions, "merchant = ? COLLATE NOCASE")
		args = append(args, filter.Merchant)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY timestamp ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.ParsedTransaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

// GetTransactionCount returns the total number of recorded transactions.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func scanTransaction(rows *sql.Rows) (model.ParsedTransaction, error) {
	var (
		txn                   model.ParsedTransaction
		amount                string
		typ                   string
		balance, creditLimit  sql.NullString
		merchant, reference   sql.NullString
		last4, from, to, body sql.NullString
		timestamp             time.Time
	)
	err := rows.Scan(&txn.Sender, &txn.BankName, &merchant, &amount, &typ,
		&txn.Currency, &reference, &last4, &balance, &creditLimit,
		&txn.IsFromCard, &from, &to, &body, &timestamp)
	if err != nil {
		return txn, fmt.Errorf("failed to scan transaction: %w", err)
	}

	txn.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return txn, fmt.Errorf("corrupt amount %q: %w", amount, err)
	}
	txn.Type = model.TransactionType(typ)
	txn.Merchant = merchant.String
	txn.Reference = reference.String
	txn.AccountLast4 = last4.String
	txn.FromAccount = from.String
	txn.ToAccount = to.String
	txn.SMSBody = body.String
	txn.Timestamp = timestamp
	txn.Balance = parseNullDecimal(balance)
	txn.CreditLimit = parseNullDecimal(creditLimit)
	return txn, nil
}

func nullDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func parseNullDecimal(s sql.NullString) *decimal.Decimal {
	if !s.Valid || s.String == "" {
		return nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return nil
	}
	return &d
}
