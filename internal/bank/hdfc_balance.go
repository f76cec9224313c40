package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/extract"
	"github.com/pennywiseai/smsledger/internal/model"
)

var (
	hdfcBalanceIsRe   = regexp.MustCompile(`(?i)is\s+INR\s*([0-9,]+(?:\.\d{1,2})?)`)
	hdfcBalanceDateRe = regexp.MustCompile(`(?i)as\s+on\s+(?:yesterday:)?(\d{1,2}-[A-Za-z]{3}-\d{2})`)
)

// ParseBalanceUpdate recognizes HDFC's periodic "avl bal ... as on" notices.
// These carry no transaction; they refresh the account snapshot.
func (h HDFC) ParseBalanceUpdate(body string) *model.BalanceUpdate {
	if !isHDFCBalanceUpdate(body) {
		return nil
	}
	last4 := extract.AccountLast4(body, hdfcAccounts)
	if last4 == "" {
		return nil
	}
	balance, ok := findAmount(hdfcBalanceIsRe, body)
	if !ok {
		return nil
	}
	update := &model.BalanceUpdate{
		BankName:     h.bankName,
		AccountLast4: last4,
		Balance:      balance,
	}
	if m := hdfcBalanceDateRe.FindStringSubmatch(body); m != nil {
		if t, err := time.Parse("2-Jan-06", m[1]); err == nil {
			update.AsOf = t
		}
	}
	return update
}

func isHDFCBalanceUpdate(body string) bool {
	lower := strings.ToLower(body)
	return containsAny(lower, "available bal", "avl bal", "account balance", "a/c balance") &&
		strings.Contains(lower, "as on") &&
		!containsAny(lower, "debited", "credited", "withdrawn", "spent", "transferred")
}
