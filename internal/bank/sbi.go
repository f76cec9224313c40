package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/extract"
	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/pattern"
)

// SBI handles State Bank of India messages, including the SBICRD credit
// card route which uses its own card and limit phrasing.
type SBI struct {
	strategy
}

var sbiDLT = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{2}-SBIBK-[STPG]$`),
	regexp.MustCompile(`^[A-Z]{2}-SBIBK$`),
	regexp.MustCompile(`^[A-Z]{2}-SBI$`),
}

var sbiAmounts = []pattern.Candidate{
	// "transaction number 1234 for Rs.383.00"
	{Regex: regexp.MustCompile(`(?i)transaction\s+number\s+\d+\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
}

var sbiLimits = []pattern.Candidate{
	{Regex: regexp.MustCompile(`(?i)available\s+limit\s+is\s+Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
}

var sbiCardLast4Re = regexp.MustCompile(`(?i)ending\s+with\s+(\d{4})`)

// NewSBI constructs the State Bank of India parser.
func NewSBI() SBI {
	return SBI{strategy{
		bankName: "State Bank of India",
		amounts:  sbiAmounts,
		limits:   sbiLimits,
	}}
}

// CanHandle matches SBI's many sender routes (SBIINB, SBIUPI, SBICRD,
// ATMSBI, DLT variants).
func (SBI) CanHandle(sender string) bool {
	upper := strings.ToUpper(sender)
	if containsAny(upper, "SBIINB", "SBIUPI", "SBICRD", "ATMSBI", "SBI") {
		return true
	}
	for _, re := range sbiDLT {
		if re.MatchString(upper) {
			return true
		}
	}
	return false
}

// Parse extracts an SBI transaction; messages from the SBICRD route are
// re-typed as credit card activity.
func (s SBI) Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	txn := s.parse(body, sender, timestamp)
	if txn == nil || !isSBICreditCard(sender) {
		return txn
	}

	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, "payment of") && strings.Contains(lower, "credited to your sbi credit card"):
		txn.Type = model.TypeIncome
	default:
		txn.Type = model.TypeCredit
	}
	if m := sbiCardLast4Re.FindStringSubmatch(body); m != nil {
		txn.AccountLast4 = m[1]
	}
	if txn.CreditLimit == nil {
		txn.CreditLimit = extract.Decimal(body, sbiLimits, pattern.AvailableLimit)
	}
	if strings.Contains(lower, "via bbps") {
		txn.Merchant = "BBPS Payment"
	}
	txn.IsFromCard = true
	return txn
}

func isSBICreditCard(sender string) bool {
	return strings.Contains(strings.ToUpper(sender), "SBICRD")
}
