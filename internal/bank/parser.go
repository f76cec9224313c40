// Package bank contains the per-institution message parsers and the
// registry that dispatches a sender identifier to the right one.
//
// Parsers are independent value types implementing Parser. Instead of an
// inheritance hierarchy, each composes the shared strategy in this file and
// pre-loads its institution-specific pattern candidates; the override
// points are explicit struct fields. Every parser is total: any message
// that is not a recognizable transaction yields nil, never an error.
package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywiseai/smsledger/internal/extract"
	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/pattern"
)

// Parser is the contract every institution parser fulfils. CanHandle must
// be a pure predicate over the sender identifier; Parse returns nil for
// anything that is not a completed transaction.
type Parser interface {
	Name() string
	CanHandle(sender string) bool
	Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction
}

// MandateParser is implemented by parsers that additionally recognize
// standing-instruction registration notices. A mandate notice is not a
// transaction; the two never match the same message.
type MandateParser interface {
	Parser
	ParseMandate(body string) *model.MandateInfo
}

// BalanceParser is implemented by parsers that recognize standalone
// balance notifications, which update an account snapshot without creating
// a ledger entry.
type BalanceParser interface {
	Parser
	ParseBalanceUpdate(body string) *model.BalanceUpdate
}

// strategy is the shared default-extraction pipeline. Institutions embed it
// by value; a zero field means "use the generic table for this concern".
type strategy struct {
	classify   func(body string) (model.TransactionType, bool)
	gate       func(body string) bool
	bankName   string
	currency   string
	amounts    []pattern.Candidate
	merchants  []pattern.Candidate
	references []pattern.Candidate
	accounts   []pattern.Candidate
	balances   []pattern.Candidate
	limits     []pattern.Candidate
}

// Name returns the institution's display name.
func (s strategy) Name() string { return s.bankName }

var (
	transferFromRe = regexp.MustCompile(`(?i)(?:transferred\s+)?from\s+(?:[A-Za-z ]+\s+)?A/?c\s+(?:no\.?\s*)?[Xx*]*(\d{3,})`)
	transferToRe   = regexp.MustCompile(`(?i)to\s+(?:[A-Za-z ]+\s+)?A/?c\s+(?:no\.?\s*)?[Xx*]*(\d{3,})`)
)

func (s strategy) parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	gate := s.gate
	if gate == nil {
		gate = extract.IsTransactionMessage
	}
	if !gate(body) {
		return nil
	}

	amount, ok := extract.Amount(body, s.amounts)
	if !ok {
		return nil
	}

	typ, classified := s.classifyBody(body)
	if !classified {
		// Ambiguous messages fall back to keyword-count direction
		// inference; a tie resolves to debit.
		typ = extract.Direction(body)
	}

	merchant := extract.Merchant(body, s.merchants)
	if merchant == "" {
		// Best effort: an amount without a payee is still worth
		// recording.
		merchant = extract.UnknownMerchant
	}

	currency := s.currency
	if currency == "" {
		currency = "INR"
	}

	txn := &model.ParsedTransaction{
		Amount:       amount,
		Type:         typ,
		Merchant:     merchant,
		Reference:    extract.Reference(body, s.references),
		AccountLast4: extract.AccountLast4(body, s.accounts),
		Balance:      extract.Decimal(body, s.balances, pattern.Balance),
		Sender:       sender,
		BankName:     s.bankName,
		Currency:     extract.Currency(body, currency),
		SMSBody:      body,
		Timestamp:    timestamp,
		IsFromCard:   extract.IsFromCard(body),
	}

	if typ == model.TypeCredit {
		txn.CreditLimit = extract.Decimal(body, s.limits, pattern.AvailableLimit)
	}

	if strings.Contains(strings.ToLower(body), "transferred") {
		from := firstGroup(transferFromRe, body)
		to := firstGroup(transferToRe, body)
		if from != "" && to != "" {
			txn.Type = model.TypeTransfer
			txn.FromAccount = last4(from)
			txn.ToAccount = last4(to)
		}
	}

	return txn
}

func (s strategy) classifyBody(body string) (model.TransactionType, bool) {
	if s.classify != nil {
		if typ, ok := s.classify(body); ok {
			return typ, true
		}
	}
	return extract.TransactionType(body)
}

func findAmount(re *regexp.Regexp, body string) (decimal.Decimal, bool) {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return decimal.Zero, false
	}
	return extract.ParseAmount(m[1])
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

func last4(digits string) string {
	if len(digits) > 4 {
		return digits[len(digits)-4:]
	}
	return digits
}

func containsAny(lower string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
