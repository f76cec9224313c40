package bank

import (
	"regexp"
	"strings"
	"time"

	"github.com/pennywiseai/smsledger/internal/model"
)

// IndusInd handles IndusInd Bank messages via the generic extraction
// pipeline; the bank mostly follows the common phrasing.
type IndusInd struct {
	strategy
}

var indusindDLT = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{2}-INDUSB(?:-S)?$`),
	regexp.MustCompile(`^[A-Z]{2}-INDUSIND(?:-S)?$`),
	regexp.MustCompile(`^[A-Z]{2}-INDUS(?:[A-Z]{2,})?-S$`),
}

// NewIndusInd constructs the IndusInd Bank parser.
func NewIndusInd() IndusInd {
	return IndusInd{strategy{bankName: "IndusInd Bank"}}
}

// CanHandle matches IndusInd sender codes and DLT variants.
func (IndusInd) CanHandle(sender string) bool {
	upper := strings.ToUpper(sender)
	if upper == "INDUSB" || upper == "INDUSIND" || strings.Contains(upper, "INDUSIND BANK") {
		return true
	}
	for _, re := range indusindDLT {
		if re.MatchString(upper) {
			return true
		}
	}
	return false
}

// Parse extracts an IndusInd transaction.
func (i IndusInd) Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	return i.parse(body, sender, timestamp)
}
