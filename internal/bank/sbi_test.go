package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywiseai/smsledger/internal/model"
)

func TestSBI_Parse_CreditCardSpend(t *testing.T) {
	body := "Rs.383.00 spent on your SBI Credit Card ending with 4523 at NETFLIX on 09-07-25. Available limit is Rs.45,000.00"
	txn := NewSBI().Parse(body, "SBICRD", testTime)

	require.NotNil(t, txn)
	assert.Equal(t, model.TypeCredit, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("383.00")))
	assert.Equal(t, "Netflix", txn.Merchant)
	assert.Equal(t, "4523", txn.AccountLast4)
	assert.True(t, txn.IsFromCard)
	require.NotNil(t, txn.CreditLimit)
	assert.True(t, txn.CreditLimit.Equal(decimal.RequireFromString("45000.00")))
}

func TestSBI_Parse_CreditCardBillPayment(t *testing.T) {
	body := "Payment of Rs.5,000.00 credited to your SBI Credit Card ending with 4523 via BBPS"
	txn := NewSBI().Parse(body, "SBICRD", testTime)

	require.NotNil(t, txn)
	assert.Equal(t, model.TypeIncome, txn.Type)
	assert.Equal(t, "BBPS Payment", txn.Merchant)
	assert.Equal(t, "4523", txn.AccountLast4)
	assert.True(t, txn.IsFromCard)
}

func TestSBI_Parse_TransactionNumberAmount(t *testing.T) {
	body := "Dear customer, transaction number 4417 for Rs.383.00 by SBI Debit Card paid at GROCERY MART on 09Jul25."
	txn := NewSBI().Parse(body, "SBIINB", testTime)

	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("383.00")))
	assert.Equal(t, model.TypeExpense, txn.Type)
}

func TestSBI_Parse_AccountDebitIsNotCard(t *testing.T) {
	body := "Rs.1,200.00 debited from A/c XX8765 on 09-07-25 to VPA grocer@ybl Ref 519012345678."
	txn := NewSBI().Parse(body, "SBIUPI", testTime)

	require.NotNil(t, txn)
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.False(t, txn.IsFromCard)
	assert.Equal(t, "8765", txn.AccountLast4)
}
