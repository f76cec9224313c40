package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/extract"
	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/pattern"
)

// Kotak handles Kotak Bank messages. Its UPI notices name the counterparty
// only as a payment address ("to merchant@bank on"), so the merchant
// candidates pull the local part, dropping the bulk "upi" prefix some
// aggregators prepend.
type Kotak struct {
	strategy
}

var kotakDLTRe = regexp.MustCompile(`^[A-Z]{2}-KOTAKB-[ST]$`)

var kotakMerchants = []pattern.Candidate{
	{Regex: regexp.MustCompile(`(?i)to\s+upi([^\s@]+)@[^\s]+\s+on`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)to\s+([^\s]+@[^\s]+)\s+on`), Group: 1},
	{Regex: regexp.MustCompile(`(?i)from\s+([^\s]+@[^\s]+)\s+on`), Group: 1},
}

var kotakAccounts = []pattern.Candidate{
	// "from Kotak Bank AC X1234"
	{Regex: regexp.MustCompile(`(?i)\bAC\s+X?(\d{4,})`), Group: 1},
}

// NewKotak constructs the Kotak Bank parser.
func NewKotak() Kotak {
	return Kotak{strategy{
		bankName:  "Kotak Bank",
		merchants: kotakMerchants,
		accounts:  kotakAccounts,
		gate:      kotakGate,
	}}
}

// kotakGate extends the generic gate: Kotak phrases UPI debits as
// "Sent Rs.X from Kotak Bank AC ...", with none of the usual verbs.
func kotakGate(body string) bool {
	if extract.IsTransactionMessage(body) {
		return true
	}
	lower := strings.ToLower(body)
	return strings.Contains(lower, "sent ") && strings.Contains(lower, "kotak") &&
		!containsAny(lower, "otp", "has requested")
}

// CanHandle matches Kotak's DLT sender pattern and common codes.
func (Kotak) CanHandle(sender string) bool {
	upper := strings.ToUpper(sender)
	return kotakDLTRe.MatchString(upper) || containsAny(upper, "KOTAKB", "KOTAK")
}

// Parse extracts a Kotak transaction.
func (k Kotak) Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	return k.parse(body, sender, timestamp)
}
