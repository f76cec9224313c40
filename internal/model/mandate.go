package model

import "github.com/shopspring/decimal"

// MandateInfo describes a standing-instruction registration notice: a
// pre-announcement of a future recurring deduction, not a completed
// transaction. It feeds subscription creation directly.
type MandateInfo struct {
	Merchant          string
	NextDeductionDate string // institution-formatted; see DateFormat
	UMN               string // unique mandate number, empty when absent
	DateFormat        string // Go reference layout for NextDeductionDate
	Amount            decimal.Decimal
}

// DefaultMandateDateFormat is the layout most institutions use for the
// next-deduction date (dd/MM/yy).
const DefaultMandateDateFormat = "02/01/06"
