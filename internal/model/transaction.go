// Package model defines the core domain types shared across the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType describes the direction or nature of a parsed transaction.
type TransactionType string

const (
	// TypeIncome is money received into an account.
	TypeIncome TransactionType = "INCOME"
	// TypeExpense is money paid out of an account.
	TypeExpense TransactionType = "EXPENSE"
	// TypeCredit is a spend on a credit card (settled later, not an
	// immediate account debit).
	TypeCredit TransactionType = "CREDIT"
	// TypeTransfer is a movement between two accounts of the same user.
	TypeTransfer TransactionType = "TRANSFER"
	// TypeInvestment is a transfer into a brokerage, fund, or clearing house.
	TypeInvestment TransactionType = "INVESTMENT"
)

// ParsedTransaction is the result of successfully parsing one institution
// message. Values are immutable once produced; the amount is always a
// positive magnitude with direction carried by Type.
type ParsedTransaction struct {
	Timestamp    time.Time
	Merchant     string
	Reference    string
	AccountLast4 string
	FromAccount  string
	ToAccount    string
	Sender       string
	BankName     string
	Currency     string
	SMSBody      string
	Amount       decimal.Decimal
	Balance      *decimal.Decimal
	CreditLimit  *decimal.Decimal
	Type         TransactionType
	IsFromCard   bool
}

// Hash derives the deduplication key for this transaction. The amount is
// normalized to two decimal places (half-up) first so that "500", "500.0"
// and "500.00" all produce the same key. Persistence enforces uniqueness
// on this value; the parser itself is stateless.
func (t *ParsedTransaction) Hash() string {
	normalized := t.Amount.Round(2).StringFixed(2)
	data := fmt.Sprintf("%s|%s|%d", t.Sender, normalized, t.Timestamp.UnixMilli())
	sum := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", sum)
}

// BalanceUpdate is a balance notification that carries no transaction.
// Some institutions push these daily; they update the account snapshot
// without creating a ledger entry.
type BalanceUpdate struct {
	AsOf         time.Time
	BankName     string
	AccountLast4 string
	Balance      decimal.Decimal
}
