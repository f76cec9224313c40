package bank

import (
	"time"

	"github.com/pennywiseai/smsledger/internal/model"
)

// Generic is the fallback parser: it accepts any sender and applies only
// the generic field extractors, so the registry can always return a parser
// even for institutions it does not specifically recognize. Extraction may
// still yield nil for individual messages.
type Generic struct {
	strategy
}

// NewGeneric constructs the fallback parser.
func NewGeneric() Generic {
	return Generic{strategy{bankName: "Unknown Bank"}}
}

// CanHandle always reports true.
func (Generic) CanHandle(string) bool { return true }

// Parse applies pure generic extraction with no institution overrides.
func (g Generic) Parse(body, sender string, timestamp time.Time) *model.ParsedTransaction {
	return g.parse(body, sender, timestamp)
}
