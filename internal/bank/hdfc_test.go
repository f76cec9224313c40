package bank

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywiseai/smsledger/internal/model"
)

func TestHDFC_CanHandle(t *testing.T) {
	h := NewHDFC()
	for _, sender := range []string{"HDFCBK", "HDFCBANK", "AD-HDFCBK-S", "JM-HDFC-P", "HDFC-BANK"} {
		assert.True(t, h.CanHandle(sender), sender)
	}
	for _, sender := range []string{"ICICIB", "BANKXY", "54321"} {
		assert.False(t, h.CanHandle(sender), sender)
	}
}

func TestHDFC_Parse_UPIDebit(t *testing.T) {
	body := "Rs.70.00 debited from HDFC Bank A/c XX1234 on 09-07-25 to VPA netflix@icici (UPI Ref No 107829781461)"
	txn := NewHDFC().Parse(body, "HDFCBK", testTime)

	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("70.00")))
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.Equal(t, "Netflix", txn.Merchant)
	assert.Equal(t, "1234", txn.AccountLast4)
	assert.Equal(t, "107829781461", txn.Reference)
	assert.Equal(t, "HDFC Bank", txn.BankName)
	assert.False(t, txn.IsFromCard)
}

func TestHDFC_Parse_SalaryCredit(t *testing.T) {
	body := "Rs.75,000.00 deposited in HDFC Bank A/c XX9876 for ACME-JUL SALARY-ACME CORP Info: SAL"
	txn := NewHDFC().Parse(body, "HDFCBK", testTime)

	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("75000.00")))
	assert.Equal(t, model.TypeIncome, txn.Type)
	assert.Equal(t, "ACME", txn.Merchant)
	assert.Equal(t, "9876", txn.AccountLast4)
}

func TestHDFC_Parse_CardSpend(t *testing.T) {
	body := "Rs.450.00 spent on Card x4523 at SWIGGY on 09-07-25. Avl bal: INR 1,200.00. Not you? BLOCK CC 4523"
	txn := NewHDFC().Parse(body, "HDFCBK", testTime)

	require.NotNil(t, txn)
	assert.Equal(t, model.TypeCredit, txn.Type)
	assert.Equal(t, "Swiggy", txn.Merchant)
	assert.Equal(t, "4523", txn.AccountLast4)
	assert.True(t, txn.IsFromCard)
	require.NotNil(t, txn.Balance)
	assert.True(t, txn.Balance.Equal(decimal.RequireFromString("1200.00")))
}

func TestHDFC_Parse_RejectsNonTransactions(t *testing.T) {
	h := NewHDFC()
	tests := []struct {
		name string
		body string
	}{
		{"otp", "123456 is your OTP for HDFC Bank NetBanking. Do not share."},
		{"collect request", "Priya has requested Rs.300.00. Approve or decline in your UPI app."},
		{"mandate notice is not a transaction", "E-Mandate! Rs.649.00 will be deducted on 15/07/25, 07:58:31 For Netflix mandate UMN 1a2b3c@okhdfcbank"},
		{"card bill payment confirmation", "Payment of Rs.4,500.00 received towards your credit card ending 4523."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, h.Parse(tt.body, "HDFCBK", testTime))
		})
	}
}

func TestHDFC_ParseMandate_EMandate(t *testing.T) {
	body := "E-Mandate! Rs.649.00 will be deducted on 15/07/25, 07:58:31 For Netflix mandate UMN 1a2b3c@okhdfcbank"
	info := NewHDFC().ParseMandate(body)

	require.NotNil(t, info)
	assert.True(t, info.Amount.Equal(decimal.RequireFromString("649.00")))
	assert.Equal(t, "Netflix", info.Merchant)
	assert.Equal(t, "15/07/25", info.NextDeductionDate)
	assert.Equal(t, "1a2b3c@okhdfcbank", info.UMN)

	next, err := time.Parse(info.DateFormat, info.NextDeductionDate)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), next)
}

func TestHDFC_ParseMandate_FutureDebit(t *testing.T) {
	body := "INR 1499.00 will be debited on 20/07/2025 for Amazon Prime ID: ABC123"
	info := NewHDFC().ParseMandate(body)

	require.NotNil(t, info)
	assert.True(t, info.Amount.Equal(decimal.RequireFromString("1499.00")))
	assert.Equal(t, "Amazon", info.Merchant)
	assert.Equal(t, "20/07/25", info.NextDeductionDate)
	assert.Empty(t, info.UMN)
}

func TestHDFC_ParseMandate_NotAMandate(t *testing.T) {
	body := "Rs.70.00 debited from HDFC Bank A/c XX1234 on 09-07-25 to VPA netflix@icici (UPI Ref No 107829781461)"
	assert.Nil(t, NewHDFC().ParseMandate(body))
}

func TestHDFC_ParseBalanceUpdate(t *testing.T) {
	body := "HDFC Bank: Your A/c XX1234 available bal as on 15-Jul-25 is INR 25,000.50"
	update := NewHDFC().ParseBalanceUpdate(body)

	require.NotNil(t, update)
	assert.Equal(t, "HDFC Bank", update.BankName)
	assert.Equal(t, "1234", update.AccountLast4)
	assert.True(t, update.Balance.Equal(decimal.RequireFromString("25000.50")))
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), update.AsOf)
}

func TestHDFC_ParseBalanceUpdate_TransactionIsNotABalanceUpdate(t *testing.T) {
	body := "Rs.70.00 debited from HDFC Bank A/c XX1234. Avl bal INR 5,000.00 as on 15-Jul-25"
	assert.Nil(t, NewHDFC().ParseBalanceUpdate(body))
}
