package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywiseai/smsledger/internal/model"
)

// SaveSubscriptions upserts subscription aggregates by ID. The detector
// recomputes aggregates from scratch, so the whole set is written back on
// each detection run.
func (s *SQLiteStorage) SaveSubscriptions(ctx context.Context, subs []model.Subscription) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSubscriptions(subs); err != nil {
		return err
	}
	if len(subs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO subscriptions (
			id, merchant_name, umn, status, frequency, amount, total_paid,
			last_amount_paid, average_amount, payment_count, is_emandate,
			start_date, end_date, last_payment_date, next_payment_date, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			merchant_name = excluded.merchant_name,
			umn = excluded.umn,
			status = excluded.status,
			frequency = excluded.frequency,
			amount = excluded.amount,
			total_paid = excluded.total_paid,
			last_amount_paid = excluded.last_amount_paid,
			average_amount = excluded.average_amount,
			payment_count = excluded.payment_count,
			is_emandate = excluded.is_emandate,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			last_payment_date = excluded.last_payment_date,
			next_payment_date = excluded.next_payment_date,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range subs {
		sub := &subs[i]
		if _, execErr := stmt.ExecContext(ctx,
			sub.ID,
			sub.MerchantName,
			sub.UMN,
			string(sub.Status),
			string(sub.Frequency),
			sub.Amount.String(),
			sub.TotalPaid.String(),
			sub.LastAmountPaid.String(),
			sub.AverageAmount.String(),
			sub.PaymentCount,
			sub.IsEMandate,
			nullTime(sub.StartDate),
			sub.EndDate,
			nullTime(sub.LastPaymentDate),
			nullTime(sub.NextPaymentDate),
		); execErr != nil {
			return fmt.Errorf("failed to upsert subscription %s: %w", sub.ID, execErr)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// GetSubscriptions returns all subscription aggregates, most recently paid
// first.
func (s *SQLiteStorage) GetSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, merchant_name, umn, status, frequency, amount, total_paid,
		       last_amount_paid, average_amount, payment_count, is_emandate,
		       start_date, end_date, last_payment_date, next_payment_date
		FROM subscriptions
		ORDER BY last_payment_date DESC, merchant_name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subs []model.Subscription
	for rows.Next() {
		var (
			sub                    model.Subscription
			umn                    sql.NullString
			status, frequency      string
			amount                 string
			total, lastPaid, avg   sql.NullString
			start, last, next, end sql.NullTime
		)
		if scanErr := rows.Scan(&sub.ID, &sub.MerchantName, &umn, &status,
			&frequency, &amount, &total, &lastPaid, &avg, &sub.PaymentCount,
			&sub.IsEMandate, &start, &end, &last, &next); scanErr != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", scanErr)
		}

		sub.UMN = umn.String
		sub.Status = model.SubscriptionStatus(status)
		sub.Frequency = model.Frequency(frequency)
		if sub.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		sub.TotalPaid = decimalOrZero(total)
		sub.LastAmountPaid = decimalOrZero(lastPaid)
		sub.AverageAmount = decimalOrZero(avg)
		sub.StartDate = start.Time
		sub.LastPaymentDate = last.Time
		sub.NextPaymentDate = next.Time
		if end.Valid {
			t := end.Time
			sub.EndDate = &t
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func decimalOrZero(s sql.NullString) decimal.Decimal {
	if d := parseNullDecimal(s); d != nil {
		return *d
	}
	return decimal.Zero
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
