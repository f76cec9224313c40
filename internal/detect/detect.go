// Package detect infers recurring-payment aggregates from a user's
// transaction history. Detection is a batch recomputation over a
// chronological snapshot: clustering is re-run from scratch on each
// invocation rather than maintained incrementally, which is the right
// trade-off at single-user volumes.
package detect

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywiseai/smsledger/internal/model"
)

// Config carries the detector's tunable heuristics. The defaults are the
// inherited field-tested values; none of them is derived from first
// principles, so they are deliberately adjustable.
type Config struct {
	// AmountCeiling excludes large one-off purchases from recurrence
	// search. Zero disables the ceiling.
	AmountCeiling decimal.Decimal
	// AmountTolerance is the relative tolerance for joining an amount
	// cluster (0.10 means the cluster mean must be within ±10% of the
	// transaction amount).
	AmountTolerance float64
	// DayTolerance is how far the averaged payment interval may deviate
	// from a canonical frequency, in days.
	DayTolerance int
	// MinClusterSize is the minimum number of matching payments before a
	// cluster can become a subscription.
	MinClusterSize int
}

// DefaultConfig returns the standard detector tuning: ±10% amount
// tolerance, ±3 day interval tolerance, clusters of at least 2.
func DefaultConfig() Config {
	return Config{
		AmountTolerance: 0.10,
		DayTolerance:    3,
		MinClusterSize:  2,
	}
}

// Detector runs recurrence detection over transaction snapshots. It holds
// only configuration; every invocation is independent.
type Detector struct {
	cfg Config
}

// New constructs a Detector, filling unset Config fields with defaults.
func New(cfg Config) *Detector {
	def := DefaultConfig()
	if cfg.AmountTolerance <= 0 {
		cfg.AmountTolerance = def.AmountTolerance
	}
	if cfg.DayTolerance <= 0 {
		cfg.DayTolerance = def.DayTolerance
	}
	if cfg.MinClusterSize < 2 {
		cfg.MinClusterSize = def.MinClusterSize
	}
	return &Detector{cfg: cfg}
}

// Detect consumes the full transaction history plus the already-known
// subscriptions and returns the updated aggregate set: existing
// subscriptions are updated in place (matched by merchant), new clusters
// create new aggregates. Unmatched existing subscriptions pass through
// untouched; nothing is ever deleted.
func (d *Detector) Detect(txns []model.ParsedTransaction, existing []model.Subscription) []model.Subscription {
	result := make([]model.Subscription, len(existing))
	copy(result, existing)

	for _, group := range d.groupByMerchant(txns) {
		for _, cluster := range d.clusterByAmount(group) {
			if len(cluster) < d.cfg.MinClusterSize {
				continue
			}
			freq, ok := d.classifyInterval(cluster)
			if !ok {
				// No canonical frequency fits; not a subscription.
				continue
			}
			result = applyCluster(result, cluster, freq)
		}
	}
	return result
}

// groupByMerchant buckets recurring-payment candidates by normalized
// merchant name. Income and transfers are not subscription charges, and
// anything above the ceiling is treated as a one-off.
func (d *Detector) groupByMerchant(txns []model.ParsedTransaction) map[string][]model.ParsedTransaction {
	groups := make(map[string][]model.ParsedTransaction)
	for _, t := range txns {
		if t.Type == model.TypeIncome || t.Type == model.TypeTransfer {
			continue
		}
		if t.Merchant == "" || t.Merchant == "Unknown Merchant" {
			continue
		}
		if d.cfg.AmountCeiling.IsPositive() && t.Amount.GreaterThan(d.cfg.AmountCeiling) {
			continue
		}
		key := NormalizeMerchant(t.Merchant)
		groups[key] = append(groups[key], t)
	}
	return groups
}

// clusterByAmount partitions one merchant's transactions greedily: sorted
// ascending by amount, each transaction joins the first cluster whose
// running mean is within the relative tolerance of its amount, else it
// starts a new cluster. Greedy single-pass is an approximation, not an
// optimal partition; it is kept pure and re-runnable on purpose.
func (d *Detector) clusterByAmount(group []model.ParsedTransaction) [][]model.ParsedTransaction {
	sorted := make([]model.ParsedTransaction, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.LessThan(sorted[j].Amount)
	})

	tolerance := decimal.NewFromFloat(d.cfg.AmountTolerance)
	var clusters [][]model.ParsedTransaction
	var sums []decimal.Decimal
	for _, t := range sorted {
		joined := false
		for i := range clusters {
			mean := sums[i].Div(decimal.NewFromInt(int64(len(clusters[i]))))
			if mean.Sub(t.Amount).Abs().LessThanOrEqual(t.Amount.Mul(tolerance)) {
				clusters[i] = append(clusters[i], t)
				sums[i] = sums[i].Add(t.Amount)
				joined = true
				break
			}
		}
		if !joined {
			clusters = append(clusters, []model.ParsedTransaction{t})
			sums = append(sums, t.Amount)
		}
	}
	return clusters
}

// classifyInterval averages the consecutive day-gaps of a chronologically
// sorted cluster and maps the average onto a canonical frequency, within
// the day tolerance. ok is false when no frequency fits.
func (d *Detector) classifyInterval(cluster []model.ParsedTransaction) (model.Frequency, bool) {
	sortByTime(cluster)

	total := 0.0
	for i := 1; i < len(cluster); i++ {
		total += cluster[i].Timestamp.Sub(cluster[i-1].Timestamp).Hours() / 24
	}
	average := total / float64(len(cluster)-1)

	for _, f := range []model.Frequency{
		model.FrequencyWeekly,
		model.FrequencyMonthly,
		model.FrequencyQuarterly,
		model.FrequencyYearly,
	} {
		if diff := average - float64(f.Days()); diff >= -float64(d.cfg.DayTolerance) && diff <= float64(d.cfg.DayTolerance) {
			return f, true
		}
	}
	return "", false
}

// applyCluster folds one classified cluster into the aggregate set:
// update the matching subscription if one exists, otherwise create one.
func applyCluster(subs []model.Subscription, cluster []model.ParsedTransaction, freq model.Frequency) []model.Subscription {
	sortByTime(cluster)
	first, last := cluster[0], cluster[len(cluster)-1]

	total := decimal.Zero
	for _, t := range cluster {
		total = total.Add(t.Amount)
	}
	average := total.Div(decimal.NewFromInt(int64(len(cluster)))).Round(2)

	if i := matchSubscription(subs, last.Merchant); i >= 0 {
		sub := &subs[i]
		sub.Frequency = freq
		sub.Amount = average
		sub.AverageAmount = average
		sub.TotalPaid = total
		sub.LastAmountPaid = last.Amount
		sub.PaymentCount = len(cluster)
		sub.LastPaymentDate = last.Timestamp
		sub.NextPaymentDate = last.Timestamp.Add(freq.Duration())
		sub.Status = model.StatusActive
		return subs
	}

	return append(subs, model.Subscription{
		ID:              uuid.NewString(),
		MerchantName:    first.Merchant,
		Status:          model.StatusActive,
		Frequency:       freq,
		Amount:          average,
		AverageAmount:   average,
		TotalPaid:       total,
		LastAmountPaid:  last.Amount,
		PaymentCount:    len(cluster),
		StartDate:       first.Timestamp,
		LastPaymentDate: last.Timestamp,
		NextPaymentDate: last.Timestamp.Add(freq.Duration()),
	})
}

// matchSubscription finds the aggregate a cluster should update. Merchant
// name is the key; when both a mandate-sourced and a detected aggregate
// exist for the same merchant, the detected one is preferred so the two
// paths stay independent.
func matchSubscription(subs []model.Subscription, merchant string) int {
	key := NormalizeMerchant(merchant)
	mandate := -1
	for i := range subs {
		if NormalizeMerchant(subs[i].MerchantName) != key {
			continue
		}
		if !subs[i].IsEMandate {
			return i
		}
		if mandate < 0 {
			mandate = i
		}
	}
	return mandate
}

// NormalizeMerchant is the grouping key: case-folded, whitespace-collapsed.
func NormalizeMerchant(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func sortByTime(txns []model.ParsedTransaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Timestamp.Before(txns[j].Timestamp)
	})
}

// ApplyMandate is the deterministic subscription path: a parsed mandate
// notice immediately creates or updates an aggregate, bypassing
// clustering entirely. The key is the UMN when present, else the
// merchant. The result is flagged IsEMandate and is never reconciled
// against cluster-detected aggregates for the same merchant.
func ApplyMandate(subs []model.Subscription, info *model.MandateInfo, now time.Time) []model.Subscription {
	next := parseMandateDate(info, now)

	if i := matchMandate(subs, info); i >= 0 {
		sub := &subs[i]
		sub.Amount = info.Amount
		sub.NextPaymentDate = next
		sub.Status = model.StatusActive
		if sub.UMN == "" {
			sub.UMN = info.UMN
		}
		return subs
	}

	return append(subs, model.Subscription{
		ID:              uuid.NewString(),
		MerchantName:    info.Merchant,
		UMN:             info.UMN,
		Status:          model.StatusActive,
		Frequency:       model.FrequencyMonthly,
		Amount:          info.Amount,
		IsEMandate:      true,
		StartDate:       now,
		NextPaymentDate: next,
	})
}

func matchMandate(subs []model.Subscription, info *model.MandateInfo) int {
	if info.UMN != "" {
		for i := range subs {
			if subs[i].UMN == info.UMN {
				return i
			}
		}
	}
	key := NormalizeMerchant(info.Merchant)
	for i := range subs {
		if subs[i].IsEMandate && NormalizeMerchant(subs[i].MerchantName) == key {
			return i
		}
	}
	return -1
}

func parseMandateDate(info *model.MandateInfo, now time.Time) time.Time {
	layout := info.DateFormat
	if layout == "" {
		layout = model.DefaultMandateDateFormat
	}
	if t, err := time.Parse(layout, info.NextDeductionDate); err == nil {
		return t
	}
	// Unparseable notice date: assume the canonical monthly interval.
	return now.Add(model.FrequencyMonthly.Duration())
}
