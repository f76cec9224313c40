package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywiseai/smsledger/internal/bank"
	"github.com/pennywiseai/smsledger/internal/cli"
	"github.com/pennywiseai/smsledger/internal/common"
	"github.com/pennywiseai/smsledger/internal/engine"
	"github.com/pennywiseai/smsledger/internal/model"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <message>",
		Short: "Parse a single message without persisting it",
		Long: `Run one message through the parser registry and print the result.

The sender decides which institution parser handles the message; the
parsed transaction, mandate notice, or balance update is printed without
touching the database.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}

	cmd.Flags().StringP("sender", "s", "", "message sender ID (e.g. AD-HDFCBK-S)")
	cmd.Flags().String("time", "", "message timestamp in RFC 3339 (default: now)")
	_ = cmd.MarkFlagRequired("sender")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(args[0]) == "" {
		return common.ErrEmptyMessage
	}

	sender, _ := cmd.Flags().GetString("sender")
	timeFlag, _ := cmd.Flags().GetString("time")

	timestamp := time.Now()
	if timeFlag != "" {
		parsed, err := time.Parse(time.RFC3339, timeFlag)
		if err != nil {
			return fmt.Errorf("invalid --time value %q: %w", timeFlag, err)
		}
		timestamp = parsed
	}

	registry := bank.NewRegistry()
	parser := registry.Lookup(sender)

	// Parsing is pure, so no storage or detector is needed here. The
	// zero engine dependencies are fine for ParseMessage.
	e := engine.New(nil, registry, nil)
	result := e.ParseMessage(engine.Message{
		Body:      args[0],
		Sender:    sender,
		Timestamp: timestamp,
	})

	out := cmd.OutOrStdout()
	switch {
	case result.Transaction != nil:
		fmt.Fprintln(out, cli.FormatTitle("Parsed transaction"))
		fmt.Fprintln(out, renderTransaction(result.Transaction))
	case result.Mandate != nil:
		fmt.Fprintln(out, cli.FormatTitle("Parsed mandate notice"))
		fmt.Fprintln(out, renderMandate(result.Mandate))
	case result.Balance != nil:
		fmt.Fprintln(out, cli.FormatTitle("Parsed balance update"))
		fmt.Fprintln(out, renderBalance(result.Balance))
	default:
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Not a transactional message (parser: %s)", parser.Name())))
	}

	return nil
}

func renderTransaction(txn *model.ParsedTransaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Bank:      %s\n", txn.BankName)
	fmt.Fprintf(&b, "  Type:      %s\n", txn.Type)
	fmt.Fprintf(&b, "  Amount:    %s %s\n", txn.Currency, txn.Amount.StringFixed(2))
	if txn.Merchant != "" {
		fmt.Fprintf(&b, "  Merchant:  %s\n", txn.Merchant)
	}
	if txn.AccountLast4 != "" {
		label := "Account"
		if txn.IsFromCard {
			label = "Card"
		}
		fmt.Fprintf(&b, "  %s:   x%s\n", label, txn.AccountLast4)
	}
	if txn.Reference != "" {
		fmt.Fprintf(&b, "  Reference: %s\n", txn.Reference)
	}
	if txn.FromAccount != "" && txn.ToAccount != "" {
		fmt.Fprintf(&b, "  Transfer:  x%s → x%s\n", txn.FromAccount, txn.ToAccount)
	}
	if txn.Balance != nil {
		fmt.Fprintf(&b, "  Balance:   %s\n", txn.Balance.StringFixed(2))
	}
	if txn.CreditLimit != nil {
		fmt.Fprintf(&b, "  Limit:     %s\n", txn.CreditLimit.StringFixed(2))
	}
	fmt.Fprintf(&b, "  Hash:      %s", txn.Hash())
	return b.String()
}

func renderMandate(info *model.MandateInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Merchant:  %s\n", info.Merchant)
	fmt.Fprintf(&b, "  Amount:    %s\n", info.Amount.StringFixed(2))
	if info.NextDeductionDate != "" {
		fmt.Fprintf(&b, "  Next due:  %s\n", info.NextDeductionDate)
	}
	if info.UMN != "" {
		fmt.Fprintf(&b, "  UMN:       %s\n", info.UMN)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBalance(update *model.BalanceUpdate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Bank:      %s\n", update.BankName)
	fmt.Fprintf(&b, "  Account:   x%s\n", update.AccountLast4)
	fmt.Fprintf(&b, "  Balance:   %s", update.Balance.StringFixed(2))
	if !update.AsOf.IsZero() {
		fmt.Fprintf(&b, "\n  As of:     %s", update.AsOf.Format("2006-01-02"))
	}
	return b.String()
}
