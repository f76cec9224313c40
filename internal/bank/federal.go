package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/extract"
	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/pattern"
)

// Federal handles Federal Bank messages: UPI debits "via UPI ... to VPA",
// card spends phrased "INR <amount> spent", and e-mandate card payments.
type Federal struct {
	strategy
}

var federalDLT = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{2}-FEDBNK-[STPG]$`),
	regexp.MustCompile(`^[A-Z]{2}-FedFiB-[A-Z]$`),
	regexp.MustCompile(`^[A-Z]{2}-FEDBNK$`),
}

var federalAmounts = []pattern.Candidate{
	{Regex: regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{1,2})?)\s+spent`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)you've\s+received\s+INR\s+([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
}

var federalMerchants = []pattern.Candidate{
	// "payment of INR 199.00 for Spotify via e-mandate"
	{Regex: regexp.MustCompile(`(?i)payment\s+of\s+[^.]+?\s+for\s+([^.\n]+?)\s+via\s+e-mandate`), Group: 1},
	// "to VPA merchant@bank"
	{Regex: regexp.MustCompile(`(?i)to\s+VPA\s+([^@\s]+)@`), Group: 1},
}

// NewFederal constructs the Federal Bank parser.
func NewFederal() Federal {
	return Federal{strategy{
		bankName:  "Federal Bank",
		amounts:   federalAmounts,
		merchants: federalMerchants,
		gate:      federalGate,
	}}
}

// federalGate extends the generic gate: e-mandate card payments say
// "Payment of INR ... via e-mandate" without any of the usual verbs.
func federalGate(body string) bool {
	if extract.IsTransactionMessage(body) {
		return true
	}
	lower := strings.ToLower(body)
	return strings.Contains(lower, "e-mandate") && strings.Contains(lower, "payment of")
}

// CanHandle matches Federal Bank sender codes and DLT variants.
func (Federal) CanHandle(sender string) bool {
	upper := strings.ToUpper(sender)
	if containsAny(upper, "FEDBNK", "FEDERAL", "FEDFIB") {
		return true
	}
	for _, re := range federalDLT {
		if re.MatchString(strings.ToUpper(sender)) {
			return true
		}
	}
	return false
}

// Parse extracts a Federal Bank transaction. Card detection deviates from
// the generic rule: "INR ... spent at ... on ..." is a card spend even
// without an explicit card phrase, while UPI and IMPS/NEFT/RTGS routes
// never are.
func (f Federal) Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	txn := f.parse(body, sender, timestamp)
	if txn == nil {
		return nil
	}
	txn.IsFromCard = federalIsCard(body)
	if txn.IsFromCard && strings.Contains(strings.ToLower(body), "credit card") {
		txn.Type = model.TypeCredit
		if txn.CreditLimit == nil {
			txn.CreditLimit = extract.Decimal(body, pattern.AvailableLimit)
		}
	}
	return txn
}

func federalIsCard(body string) bool {
	lower := strings.ToLower(body)
	switch {
	case containsAny(lower, "via upi", "to vpa", "via imps", "via neft", "via rtgs", "atm"):
		return false
	case containsAny(lower, "credit card", "debit card", "card xx**", "card ending with"):
		return true
	case strings.Contains(lower, " spent ") && strings.Contains(lower, " at ") && strings.Contains(lower, " on "):
		return true
	}
	return false
}
