package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the canonical recurrence interval of a subscription.
type Frequency string

const (
	// FrequencyWeekly recurs every 7 days.
	FrequencyWeekly Frequency = "WEEKLY"
	// FrequencyMonthly recurs every 30 days.
	FrequencyMonthly Frequency = "MONTHLY"
	// FrequencyQuarterly recurs every 90 days.
	FrequencyQuarterly Frequency = "QUARTERLY"
	// FrequencyYearly recurs every 365 days.
	FrequencyYearly Frequency = "YEARLY"
)

// Days returns the canonical interval length in days.
func (f Frequency) Days() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyMonthly:
		return 30
	case FrequencyQuarterly:
		return 90
	case FrequencyYearly:
		return 365
	default:
		return 0
	}
}

// Duration returns the canonical interval as a time.Duration.
func (f Frequency) Duration() time.Duration {
	return time.Duration(f.Days()) * 24 * time.Hour
}

// SubscriptionStatus models the lifecycle of a subscription aggregate.
// Subscriptions are never silently deleted; they transition between states.
type SubscriptionStatus string

const (
	// StatusActive is a subscription currently being charged.
	StatusActive SubscriptionStatus = "ACTIVE"
	// StatusPaused is temporarily suspended by the user.
	StatusPaused SubscriptionStatus = "PAUSED"
	// StatusCancelled was explicitly cancelled.
	StatusCancelled SubscriptionStatus = "CANCELLED"
	// StatusExpired reached its natural end date.
	StatusExpired SubscriptionStatus = "EXPIRED"
	// StatusFailed had its last payment fail.
	StatusFailed SubscriptionStatus = "FAILED"
	// StatusTrial is in a trial period.
	StatusTrial SubscriptionStatus = "TRIAL"
)

// Subscription is a durable recurring-payment aggregate, created either
// from a cluster of matching transactions or deterministically from a
// parsed mandate notice (IsEMandate=true).
type Subscription struct {
	NextPaymentDate time.Time
	LastPaymentDate time.Time
	StartDate       time.Time
	EndDate         *time.Time
	ID              string
	MerchantName    string
	UMN             string
	Status          SubscriptionStatus
	Frequency       Frequency
	Amount          decimal.Decimal
	TotalPaid       decimal.Decimal
	LastAmountPaid  decimal.Decimal
	AverageAmount   decimal.Decimal
	PaymentCount    int
	IsEMandate      bool
}
