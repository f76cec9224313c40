package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/pattern"
)

// Axis handles Axis Bank messages, which lead with "INR <amount> debited".
type Axis struct {
	strategy
}

var axisDLT = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{2}-AXIS(?:BK|BANK)?-S$`),
	regexp.MustCompile(`^[A-Z]{2}-AXIS(?:BK)?$`),
}

var axisAmounts = []pattern.Candidate{
	{Regex: regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{1,2})?)\s+debited`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{1,2})?)\s+credited`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)Payment\s+of\s+INR\s+([0-9,]+(?:\.\d{1,2})?)`), Group: 1},
}

var axisMerchants = []pattern.Candidate{
	// UPI trailer: "UPI/P2M/107829781461/Swiggy"
	{Regex: regexp.MustCompile(`(?i)UPI/P2[AM]/\d+/([^/\n]+)`), Group: 1},
}

// NewAxis constructs the Axis Bank parser.
func NewAxis() Axis {
	return Axis{strategy{
		bankName:  "Axis Bank",
		amounts:   axisAmounts,
		merchants: axisMerchants,
	}}
}

// CanHandle matches Axis sender codes and DLT variants.
func (Axis) CanHandle(sender string) bool {
	upper := strings.ToUpper(sender)
	if containsAny(upper, "AXIS BANK", "AXISBANK", "AXISBK", "AXISB") || upper == "AXIS" {
		return true
	}
	for _, re := range axisDLT {
		if re.MatchString(upper) {
			return true
		}
	}
	return false
}

// Parse extracts an Axis transaction.
func (a Axis) Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	return a.parse(body, sender, timestamp)
}
