package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/pattern"
)

// Canara handles Canara Bank messages, which use a distinctive
// "Rs.23.00 paid thru A/C..." phrasing for UPI debits.
type Canara struct {
	strategy
}

var canaraAmounts = []pattern.Candidate{
	{Regex: regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{1,2})?)\s+paid`), Group: 1},
}

var canaraMerchants = []pattern.Candidate{
	// "paid thru A/C XX1234 to merchant-name on date"
	{Regex: regexp.MustCompile(`(?i)paid\s+thru\s+A/?C\s+\S+\s+to\s+([^.\n]+?)\s+on\s+\d`), Group: 1},
}

// NewCanara constructs the Canara Bank parser.
func NewCanara() Canara {
	return Canara{strategy{
		bankName:  "Canara Bank",
		amounts:   canaraAmounts,
		merchants: canaraMerchants,
	}}
}

// CanHandle matches Canara sender codes.
func (Canara) CanHandle(sender string) bool {
	upper := strings.ToUpper(sender)
	return containsAny(upper, "CANBNK", "CANARA")
}

// Parse extracts a Canara transaction.
func (c Canara) Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	return c.parse(body, sender, timestamp)
}
