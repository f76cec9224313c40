package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywiseai/smsledger/internal/model"
)

func TestKotak_Parse_SentUPI(t *testing.T) {
	body := "Sent Rs.200.00 from Kotak Bank AC X1234 to upiswiggy@icici on 09-07-25. UPI Ref 107829781461."
	txn := NewKotak().Parse(body, "KM-KOTAKB-S", testTime)

	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("200.00")))
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.Equal(t, "Swiggy", txn.Merchant, "bulk upi prefix is stripped from the payment address")
	assert.Equal(t, "1234", txn.AccountLast4)
}

func TestKotak_Parse_ReceivedUPI(t *testing.T) {
	body := "Received Rs.1,500.00 in your Kotak Bank AC X1234 from john.doe@okaxis on 09-07-25. UPI Ref 107829781461."
	txn := NewKotak().Parse(body, "KOTAKB", testTime)

	require.NotNil(t, txn)
	assert.Equal(t, model.TypeIncome, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("1500.00")))
}

func TestKotak_Parse_OTPRejected(t *testing.T) {
	body := "1234 is the OTP sent for your Kotak Bank transaction. Do not share."
	assert.Nil(t, NewKotak().Parse(body, "KOTAKB", testTime))
}
