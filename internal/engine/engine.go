// Package engine orchestrates batch parsing of institution messages:
// dispatch through the parser registry, parallel extraction, idempotent
// persistence, and subscription detection over the accumulated history.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pennywiseai/smsledger/internal/bank"
	"github.com/pennywiseai/smsledger/internal/detect"
	"github.com/pennywiseai/smsledger/internal/model"
	"github.com/pennywiseai/smsledger/internal/service"
)

// Message is one raw institution notification.
type Message struct {
	Timestamp time.Time
	Body      string
	Sender    string
}

// Result is the outcome of parsing a single message. At most one of the
// pointer fields is set; all nil means the message was not recognizable.
type Result struct {
	Transaction *model.ParsedTransaction
	Mandate     *model.MandateInfo
	Balance     *model.BalanceUpdate
}

// ScanStats summarizes a batch scan.
type ScanStats struct {
	Total          int
	Transactions   int
	Inserted       int
	Duplicates     int
	Mandates       int
	BalanceUpdates int
	Skipped        int
}

// Config holds scan engine options.
type Config struct {
	// Workers is the parsing parallelism. Parsing is pure, so messages
	// can be partitioned arbitrarily.
	Workers int
	// Progress, when set, is called once per processed message.
	Progress func()
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{Workers: 4}
}

// ScanEngine wires the registry, the store, and the detector together.
type ScanEngine struct {
	storage  service.Storage
	registry *bank.Registry
	detector *detect.Detector
	cfg      Config
}

// New creates a scan engine with default configuration.
func New(storage service.Storage, registry *bank.Registry, detector *detect.Detector) *ScanEngine {
	return NewWithConfig(storage, registry, detector, DefaultConfig())
}

// NewWithConfig creates a scan engine with custom configuration.
func NewWithConfig(storage service.Storage, registry *bank.Registry, detector *detect.Detector, cfg Config) *ScanEngine {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	return &ScanEngine{
		storage:  storage,
		registry: registry,
		detector: detector,
		cfg:      cfg,
	}
}

// ParseMessage runs one message through dispatch and extraction. It never
// returns an error: unrecognizable messages yield an empty Result.
func (e *ScanEngine) ParseMessage(msg Message) Result {
	parser := e.registry.Lookup(msg.Sender)

	if txn := parser.Parse(msg.Body, msg.Sender, msg.Timestamp); txn != nil {
		return Result{Transaction: txn}
	}
	if mp, ok := parser.(bank.MandateParser); ok {
		if info := mp.ParseMandate(msg.Body); info != nil {
			return Result{Mandate: info}
		}
	}
	if bp, ok := parser.(bank.BalanceParser); ok {
		if update := bp.ParseBalanceUpdate(msg.Body); update != nil {
			return Result{Balance: update}
		}
	}
	return Result{}
}

// Scan parses a batch of messages in parallel and persists the results.
// Cancellation is checked between messages; because persistence is
// insert-or-ignore on the identity hash, a cancelled scan leaves no
// partial state and can simply be re-run over the same batch.
func (e *ScanEngine) Scan(ctx context.Context, messages []Message) (ScanStats, error) {
	stats := ScanStats{Total: len(messages)}
	if len(messages) == 0 {
		return stats, nil
	}

	slog.Info("Starting scan", "messages", len(messages), "workers", e.cfg.Workers)

	results, err := e.parseAll(ctx, messages)
	if err != nil {
		return stats, err
	}

	var txns []model.ParsedTransaction
	var mandates []*model.MandateInfo
	var balances []*model.BalanceUpdate
	for _, r := range results {
		switch {
		case r.Transaction != nil:
			txns = append(txns, *r.Transaction)
		case r.Mandate != nil:
			mandates = append(mandates, r.Mandate)
		case r.Balance != nil:
			balances = append(balances, r.Balance)
		default:
			stats.Skipped++
		}
	}
	stats.Transactions = len(txns)
	stats.Mandates = len(mandates)
	stats.BalanceUpdates = len(balances)

	if len(txns) > 0 {
		inserted, saveErr := e.storage.SaveTransactions(ctx, txns)
		if saveErr != nil {
			return stats, fmt.Errorf("failed to save transactions: %w", saveErr)
		}
		stats.Inserted = inserted
		stats.Duplicates = len(txns) - inserted
	}

	for _, update := range balances {
		if saveErr := e.storage.SaveBalanceUpdate(ctx, update); saveErr != nil {
			return stats, fmt.Errorf("failed to save balance update: %w", saveErr)
		}
	}

	if len(mandates) > 0 {
		if mandateErr := e.applyMandates(ctx, mandates); mandateErr != nil {
			return stats, mandateErr
		}
	}

	slog.Info("Scan complete",
		"transactions", stats.Transactions,
		"inserted", stats.Inserted,
		"duplicates", stats.Duplicates,
		"mandates", stats.Mandates,
		"balance_updates", stats.BalanceUpdates,
		"skipped", stats.Skipped)
	return stats, nil
}

// parseAll fans the batch out over the worker pool. Message order within
// the batch carries no correctness requirement, but results are returned
// in input order to keep runs reproducible.
func (e *ScanEngine) parseAll(ctx context.Context, messages []Message) ([]Result, error) {
	type job struct {
		index int
		msg   Message
	}

	jobs := make(chan job)
	results := make([]Result, len(messages))

	var wg sync.WaitGroup
	for w := 0; w < e.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = e.ParseMessage(j.msg)
				if e.cfg.Progress != nil {
					e.cfg.Progress()
				}
			}
		}()
	}

	var cancelErr error
feed:
	for i, msg := range messages {
		select {
		case <-ctx.Done():
			cancelErr = ctx.Err()
			break feed
		case jobs <- job{index: i, msg: msg}:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelErr != nil {
		return nil, cancelErr
	}
	return results, nil
}

// applyMandates folds parsed mandate notices into the subscription set.
func (e *ScanEngine) applyMandates(ctx context.Context, mandates []*model.MandateInfo) error {
	subs, err := e.storage.GetSubscriptions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load subscriptions: %w", err)
	}
	now := time.Now()
	for _, info := range mandates {
		subs = detect.ApplyMandate(subs, info, now)
	}
	if err := e.storage.SaveSubscriptions(ctx, subs); err != nil {
		return fmt.Errorf("failed to save subscriptions: %w", err)
	}
	return nil
}

// DetectSubscriptions recomputes subscription aggregates from the full
// recorded history and persists the updated set.
func (e *ScanEngine) DetectSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	txns, err := e.storage.GetTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	existing, err := e.storage.GetSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	subs := e.detector.Detect(txns, existing)
	if err := e.storage.SaveSubscriptions(ctx, subs); err != nil {
		return nil, fmt.Errorf("failed to save subscriptions: %w", err)
	}

	slog.Info("Subscription detection complete",
		"transactions", len(txns),
		"subscriptions", len(subs))
	return subs, nil
}
