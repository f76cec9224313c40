package pattern

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidate_Find(t *testing.T) {
	upper := Candidate{
		Regex: regexp.MustCompile(`value=(\w+)`),
		Group: 1,
		Post:  strings.ToUpper,
	}

	got, ok := upper.Find("value=abc")
	assert.True(t, ok)
	assert.Equal(t, "ABC", got)

	_, ok = upper.Find("nothing here")
	assert.False(t, ok)
}

func TestFindFirst_OrderMatters(t *testing.T) {
	candidates := []Candidate{
		{Regex: regexp.MustCompile(`Rs\.(\d+)`), Group: 1},
		{Regex: regexp.MustCompile(`(\d+)`), Group: 1},
	}

	got, ok := FindFirst(candidates, "paid Rs.500 ref 999")
	assert.True(t, ok)
	assert.Equal(t, "500", got, "the first candidate in the list wins")
}

func TestAmountCandidates(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"rs with dot", "Rs.500.00 debited", "500.00"},
		{"rs with space", "Rs 1,200 debited", "1,200"},
		{"inr", "INR 199.00 spent", "199.00"},
		{"rupee symbol", "₹649.00 charged", "649.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindFirst(Amount, tt.message)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBalanceCandidates(t *testing.T) {
	got, ok := FindFirst(Balance, "Avl Bal: Rs.12,345.67")
	assert.True(t, ok)
	assert.Equal(t, "12,345.67", got)
}
