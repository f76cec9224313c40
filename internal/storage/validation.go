package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pennywiseai/smsledger/internal/model"
)

// Validation errors.
var (
	ErrNilContext          = errors.New("context cannot be nil")
	ErrEmptyString         = errors.New("string parameter cannot be empty")
	ErrNilParameter        = errors.New("parameter cannot be nil")
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrInvalidSubscription = errors.New("invalid subscription")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a slice of parse results before saving.
func validateTransactions(txns []model.ParsedTransaction) error {
	for i := range txns {
		if err := validateTransaction(&txns[i]); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

func validateTransaction(txn *model.ParsedTransaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}
	if txn.Sender == "" {
		return fmt.Errorf("%w: missing sender", ErrInvalidTransaction)
	}
	if txn.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidTransaction)
	}
	return nil
}

func validateSubscriptions(subs []model.Subscription) error {
	for i := range subs {
		if subs[i].ID == "" {
			return fmt.Errorf("subscription at index %d: %w: missing ID", i, ErrInvalidSubscription)
		}
		if subs[i].MerchantName == "" {
			return fmt.Errorf("subscription at index %d: %w: missing merchant", i, ErrInvalidSubscription)
		}
	}
	return nil
}
