package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywiseai/smsledger/internal/model"
)

func TestIndusInd_Parse_UPIDebit(t *testing.T) {
	body := "Rs.2,500.00 debited from A/c XX4321 on 12-07-25 to VPA swiggy@icici. Ref No 456789123456 - IndusInd Bank"
	txn := NewIndusInd().Parse(body, "JD-INDUSB", testTime)

	require.NotNil(t, txn)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("2500.00")))
	assert.Equal(t, model.TypeExpense, txn.Type)
	assert.Equal(t, "Swiggy", txn.Merchant)
	assert.Equal(t, "4321", txn.AccountLast4)
	assert.Equal(t, "IndusInd Bank", txn.BankName)
}

func TestIndusInd_Parse_Credit(t *testing.T) {
	body := "Rs.10,000.00 credited to A/c XX4321 on 12-07-25 by NEFT. - IndusInd Bank"
	txn := NewIndusInd().Parse(body, "INDUSB", testTime)

	require.NotNil(t, txn)
	assert.Equal(t, model.TypeIncome, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("10000.00")))
}

func TestIndusInd_Parse_RejectsPromo(t *testing.T) {
	body := "Upgrade to an IndusInd platinum card today and earn 5x rewards!"
	assert.Nil(t, NewIndusInd().Parse(body, "INDUSB", testTime))
}

func TestIndusInd_CanHandle(t *testing.T) {
	tests := []struct {
		sender string
		want   bool
	}{
		{"INDUSB", true},
		{"JD-INDUSB", true},
		{"JD-INDUSB-S", true},
		{"INDUSIND", true},
		{"HDFCBK", false},
		{"JD-ICICIB-S", false},
	}

	for _, tt := range tests {
		t.Run(tt.sender, func(t *testing.T) {
			assert.Equal(t, tt.want, NewIndusInd().CanHandle(tt.sender))
		})
	}
}
