package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/pattern"
)

// ICICI handles ICICI Bank messages. The bank's card spends lead with a
// currency code ("USD 11.80 spent"), and its debit/credit notices use
// "debited with"/"credited with" phrasing.
type ICICI struct {
	strategy
}

var iciciDLT = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{2}-ICICIB?-[STPG]$`),
	regexp.MustCompile(`^[A-Z]{2}-ICICIB?$`),
}

var iciciAmounts = []pattern.Candidate{
	{Regex: regexp.MustCompile(`(?i)[A-Z]{3}\s+([0-9,]+(?:\.\d{1,2})?)\s+spent`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)debited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)debited\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)credited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)credited:\s*Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
}

var iciciMerchants = []pattern.Candidate{
	// Card spends: "on 09-Jul-25 at AMAZON. Avl Lmt..."
	{Regex: regexp.MustCompile(`(?i)on\s+\d{2}-[A-Za-z]{3}-\d{2}\s+(?:at|on)\s+([^.\n]+?)(?:\.|\s+Avl|$)`), Group: 1},
}

// NewICICI constructs the ICICI Bank parser.
func NewICICI() ICICI {
	return ICICI{strategy{
		bankName:  "ICICI Bank",
		amounts:   iciciAmounts,
		merchants: iciciMerchants,
		classify:  iciciClassify,
	}}
}

// CanHandle matches ICICI sender codes and DLT variants.
func (ICICI) CanHandle(sender string) bool {
	upper := strings.ToUpper(sender)
	if strings.Contains(upper, "ICICI") {
		return true
	}
	for _, re := range iciciDLT {
		if re.MatchString(upper) {
			return true
		}
	}
	return false
}

// Parse extracts an ICICI transaction.
func (i ICICI) Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	return i.parse(body, sender, timestamp)
}

func iciciClassify(body string) (model.TransactionType, bool) {
	lower := strings.ToLower(body)
	if strings.Contains(lower, "spent") && containsAny(lower, "credit card", "icici bank card") {
		return model.TypeCredit, true
	}
	return "", false
}
