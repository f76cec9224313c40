package bank

// Registry dispatches a sender identifier to the first parser whose
// CanHandle accepts it. Registration order is fixed and significant:
// institution parsers come before the generic fallback, and more
// specific sender patterns before broader ones, so dispatch is
// deterministic for any sender that could match several parsers.
type Registry struct {
	parsers []Parser
}

// NewRegistry builds the registry with the standard parser order. The
// generic parser is registered last and accepts every sender, so Lookup
// never fails.
func NewRegistry() *Registry {
	return &Registry{parsers: []Parser{
		NewHDFC(),
		NewSBI(),
		NewICICI(),
		NewAxis(),
		NewFederal(),
		NewKotak(),
		NewIndusInd(),
		NewCanara(),
		NewGeneric(),
	}}
}

// Lookup returns the first parser that handles the sender.
func (r *Registry) Lookup(sender string) Parser {
	for _, p := range r.parsers {
		if p.CanHandle(sender) {
			return p
		}
	}
	// Unreachable: the generic parser accepts everything.
	return NewGeneric()
}

// Parsers returns the registered parsers in dispatch order.
func (r *Registry) Parsers() []Parser {
	out := make([]Parser, len(r.parsers))
	copy(out, r.parsers)
	return out
}
