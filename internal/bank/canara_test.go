package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywiseai/smsledger/internal/model"
)

func TestCanara_Parse_UPIDebit(t *testing.T) {
	body := "Rs.49.00 paid thru A/C XX6044 on 9-7-25 to zomato@paytm. UPI Ref 519012345678 -Canara Bank"
	txn := NewCanara().Parse(body, "CP-CANBNK-S", testTime)

	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("49.00")))
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.Equal(t, "Zomato", txn.Merchant, "payment address local part maps to the brand")
	assert.Equal(t, "6044", txn.AccountLast4)
	assert.Equal(t, "Canara Bank", txn.BankName)
}

func TestCanara_Parse_NamedPayee(t *testing.T) {
	body := "Rs.300.00 paid thru A/C XX6044 to Fresh Mart Stores on 9-7-25. UPI Ref 519012345678 -Canara Bank"
	txn := NewCanara().Parse(body, "CANBNK", testTime)

	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, "Fresh", txn.Merchant)
}
