package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	tests := []struct {
		name     string
		sender   string
		wantBank string
	}{
		{"hdfc dlt sender", "AD-HDFCBK-S", "HDFC Bank"},
		{"hdfc plain sender", "HDFCBK", "HDFC Bank"},
		{"sbi upi route", "SBIUPI", "State Bank of India"},
		{"sbi card route", "SBICRD", "State Bank of India"},
		{"icici dlt sender", "JM-ICICIB-S", "ICICI Bank"},
		{"axis dlt sender", "AX-AXISBK-S", "Axis Bank"},
		{"federal dlt sender", "AD-FEDBNK-S", "Federal Bank"},
		{"kotak dlt sender", "KM-KOTAKB-S", "Kotak Bank"},
		{"indusind dlt sender", "JD-INDUSB", "IndusInd Bank"},
		{"canara dlt sender", "CP-CANBNK-S", "Canara Bank"},
		{"unknown sender falls back", "BANKXY", "Unknown Bank"},
		{"numeric shortcode falls back", "54321", "Unknown Bank"},
	}

	registry := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := registry.Lookup(tt.sender)
			require.NotNil(t, parser)
			assert.Equal(t, tt.wantBank, parser.Name())
		})
	}
}

// A sender that several parsers accept must always dispatch to the one
// registered first, so repeated scans of the same inbox parse identically.
func TestRegistry_Lookup_OverlapResolvesByOrder(t *testing.T) {
	sender := "HDFC-SBI"
	require.True(t, NewHDFC().CanHandle(sender), "HDFC should accept %q", sender)
	require.True(t, NewSBI().CanHandle(sender), "SBI should accept %q", sender)

	parser := NewRegistry().Lookup(sender)
	assert.Equal(t, "HDFC Bank", parser.Name())
}

func TestRegistry_GenericIsLast(t *testing.T) {
	parsers := NewRegistry().Parsers()
	require.NotEmpty(t, parsers)
	assert.Equal(t, "Unknown Bank", parsers[len(parsers)-1].Name())
	for _, p := range parsers[:len(parsers)-1] {
		assert.False(t, p.CanHandle("ZZ-NOBODY"), "%s should not accept an unknown sender", p.Name())
	}
}
