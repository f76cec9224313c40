package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywiseai/smsledger/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"plain", "500", "500", true},
		{"two decimals", "500.00", "500.00", true},
		{"indian grouping", "1,00,000.00", "100000.00", true},
		{"western grouping", "12,345.67", "12345.67", true},
		{"one decimal", "99.5", "99.5", true},
		{"three decimals rejected", "1.234", "", false},
		{"zero rejected", "0.00", "", false},
		{"negative rejected", "-50", "", false},
		{"empty", "", "", false},
		{"garbage", "abc", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
			}
		})
	}
}

func TestAmount_FallsThroughMalformedCandidate(t *testing.T) {
	// The Rs candidate matches a lone comma, which fails numeric parsing;
	// the INR candidate must still be tried.
	got, ok := Amount("Rs. , on hold. Charged INR 250.00")
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("250.00")))
}

func TestAccountLast4(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"masked account", "debited from A/c XX0093 today", "0093"},
		{"long account trimmed", "Account No. 123456789012 debited", "9012"},
		{"card", "spent on Card x4523 at store", "4523"},
		{"absent", "nothing to see here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccountLast4(tt.message))
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    model.TransactionType
	}{
		{"clear debit", "Rs.100 debited and paid to merchant", model.TypeExpense},
		{"clear credit", "Rs.100 credited, deposit received", model.TypeIncome},
		{"tie resolves to debit", "Rs.100 paid and received confirmation", model.TypeExpense},
		{"no keywords defaults to debit", "Rs.100 moved", model.TypeExpense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Direction(tt.message))
		})
	}
}

func TestTransactionType(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    model.TransactionType
		ok      bool
	}{
		{"debit", "Rs.100 debited from A/c", model.TypeExpense, true},
		{"credit", "Rs.100 credited to A/c", model.TypeIncome, true},
		{"cashback", "Rs.50 cashback credited", model.TypeIncome, true},
		{"investment wins over debit", "Rs.5,000 debited towards Zerodha SIP", model.TypeInvestment, true},
		{"unclassifiable", "your statement is ready", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TransactionType(tt.message)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsTransactionMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"debit notice", "Rs.100 debited from your account", true},
		{"otp", "Your OTP is 123456, valid 10 minutes", false},
		{"promo", "Flat 40% discount this weekend only!", false},
		{"collect request", "Ravi has requested Rs.200 from you", false},
		{"dues reminder", "Total amount of Rs.4,500 is due by 15-07", false},
		{"no transaction verb", "Welcome to mobile banking", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransactionMessage(tt.message))
		})
	}
}

func TestIsFromCard(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"credit card", "Rs.250 spent on your Credit Card ending 4523", true},
		{"account debit wins over masked digits", "Rs.250 debited from A/c XX4523", false},
		{"plain upi", "Rs.250 paid via UPI to merchant@ybl", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFromCard(tt.message))
		})
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "USD", Currency("USD 11.80 spent on card", "INR"))
	assert.Equal(t, "INR", Currency("Rs.100 debited", "INR"))
	assert.Equal(t, "INR", Currency("UPI 107829781461 processed", "INR"),
		"unrelated three-letter tokens are not currencies")
}
