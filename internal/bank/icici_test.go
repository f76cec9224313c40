package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywiseai/smsledger/internal/model"
)

func TestICICI_Parse_ForeignCurrencyCardSpend(t *testing.T) {
	body := "USD 11.80 spent on ICICI Bank Card XX1004 on 09-Jul-25 at AMAZON WEB SERVICES. Avl Lmt: Rs.1,50,000.00"
	txn := NewICICI().Parse(body, "ICICIB", testTime)

	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("11.80")))
	assert.Equal(t, model.TypeCredit, txn.Type)
	assert.Equal(t, "USD", txn.Currency)
	assert.Equal(t, "Amazon", txn.Merchant)
	assert.Equal(t, "1004", txn.AccountLast4)
	assert.True(t, txn.IsFromCard)
	require.NotNil(t, txn.CreditLimit)
	assert.True(t, txn.CreditLimit.Equal(decimal.RequireFromString("150000.00")))
}

func TestICICI_Parse_AccountDebit(t *testing.T) {
	body := "ICICI Bank Acct XX3021 debited with Rs.2,000.00 on 09-Jul-25; JOHN DOE credited. UPI:107829781461"
	txn := NewICICI().Parse(body, "JM-ICICIB-S", testTime)

	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("2000.00")))
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.Equal(t, "3021", txn.AccountLast4)
	assert.Equal(t, "INR", txn.Currency)
}

func TestICICI_Parse_SalaryCredit(t *testing.T) {
	body := "Your ICICI Bank Acct XX3021 is credited with Rs.90,000.00 on 01-Jul-25. Info NEFT-ACME TECHNOLOGIES."
	txn := NewICICI().Parse(body, "ICICIB", testTime)

	require.NotNil(t, txn)
	assert.Equal(t, model.TypeIncome, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("90000.00")))
}
