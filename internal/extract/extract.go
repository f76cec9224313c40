// Package extract implements the institution-agnostic field extractors.
// Every routine is total: a pattern that matches but fails to parse is
// treated as a non-match and the next candidate is tried. Nothing in this
// package returns an error for malformed input.
package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/pattern"
)

// ParseAmount normalizes a captured amount string: thousands separators are
// stripped, at most two decimal digits are accepted, and non-positive
// results are rejected.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	if i := strings.IndexByte(cleaned, '.'); i >= 0 && len(cleaned)-i-1 > 2 {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// Amount tries the given candidates before the generic amount table and
// returns the first capture that parses to a positive value.
func Amount(message string, candidates ...[]pattern.Candidate) (decimal.Decimal, bool) {
	for _, list := range append(candidates, pattern.Amount) {
		for _, c := range list {
			raw, ok := c.Find(message)
			if !ok {
				continue
			}
			if d, parsed := ParseAmount(raw); parsed {
				return d, true
			}
			// Matched but unparseable: fall through to the next candidate.
		}
	}
	return decimal.Zero, false
}

// Decimal extracts an optional decimal field (balance, credit limit) using
// the given candidate lists in order.
func Decimal(message string, candidates ...[]pattern.Candidate) *decimal.Decimal {
	for _, list := range candidates {
		for _, c := range list {
			raw, ok := c.Find(message)
			if !ok {
				continue
			}
			if d, parsed := ParseAmount(raw); parsed {
				return &d
			}
		}
	}
	return nil
}

// Reference extracts a transaction reference number.
func Reference(message string, candidates ...[]pattern.Candidate) string {
	for _, list := range append(candidates, pattern.Reference) {
		if v, ok := pattern.FindFirst(list, message); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// AccountLast4 extracts the trailing four digits of a masked account or
// card number. Longer captures are trimmed to their last four digits.
func AccountLast4(message string, candidates ...[]pattern.Candidate) string {
	for _, list := range append(candidates, pattern.Account) {
		for _, c := range list {
			raw, ok := c.Find(message)
			if !ok {
				continue
			}
			digits := keepDigits(raw)
			if len(digits) >= 4 {
				return digits[len(digits)-4:]
			}
		}
	}
	return ""
}

// Currency returns the first recognized ISO code found next to an amount,
// or the fallback.
func Currency(message, fallback string) string {
	for _, m := range pattern.CurrencyCode.FindAllStringSubmatch(message, -1) {
		code := strings.ToUpper(m[1])
		if _, ok := pattern.KnownCurrencies[code]; ok {
			return code
		}
	}
	return fallback
}

// Direction infers debit vs credit by counting keyword occurrences in the
// message. Credit wins only on a strict majority; a tie resolves to debit.
// This is the documented low-confidence fallback, not an error path.
func Direction(message string) model.TransactionType {
	lower := strings.ToLower(message)
	debits, credits := 0, 0
	for _, k := range pattern.DebitKeywords {
		if strings.Contains(lower, k) {
			debits++
		}
	}
	for _, k := range pattern.CreditKeywords {
		if strings.Contains(lower, k) {
			credits++
		}
	}
	if credits > debits {
		return model.TypeIncome
	}
	return model.TypeExpense
}

// TransactionType resolves the transaction type from message keywords.
// Investment indicators take priority; ok is false when no transaction
// keyword is present at all.
func TransactionType(message string) (model.TransactionType, bool) {
	lower := strings.ToLower(message)
	if IsInvestment(lower) {
		return model.TypeInvestment, true
	}
	switch {
	case containsAny(lower, "debited", "withdrawn", "spent", "charged", "paid", "purchase", "deducted"):
		return model.TypeExpense, true
	case strings.Contains(lower, "cashback") && !strings.Contains(lower, "earn cashback"):
		return model.TypeIncome, true
	case containsAny(lower, "credited", "deposited", "received", "refund"):
		return model.TypeIncome, true
	}
	return "", false
}

// IsInvestment reports whether the lowercased message indicates a transfer
// to a broker, clearing house, or fund.
func IsInvestment(lower string) bool {
	for _, k := range pattern.InvestmentKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// IsTransactionMessage gates extraction: one-time codes, promotions,
// collect requests, and dues reminders are not transactions.
func IsTransactionMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range pattern.SkipPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	for _, k := range pattern.TransactionKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// IsFromCard reports whether the message describes a card transaction.
// Account phrasing is checked first and wins: "from Bank A/c XX1234" is an
// account debit even when a masked number follows.
func IsFromCard(message string) bool {
	lower := strings.ToLower(message)
	for _, p := range pattern.AccountPhrases {
		if strings.Contains(lower, p) {
			return false
		}
	}
	for _, p := range pattern.CardPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return strings.Contains(lower, "ending") && maskedCardRe.MatchString(message)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
