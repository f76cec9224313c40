package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pennywiseai/smsledger/internal/cli"
	"github.com/pennywiseai/smsledger/internal/config"
	"github.com/pennywiseai/smsledger/internal/model"
)

func subscriptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subs"},
		Short:   "Inspect and recompute detected subscriptions",
	}

	cmd.AddCommand(subscriptionsDetectCmd())
	cmd.AddCommand(subscriptionsListCmd())

	return cmd
}

func subscriptionsDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Recompute subscriptions from the recorded history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, store, err := initEngine(cmd.Context(), config.LoadEngineConfig())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			subs, err := e.DetectSubscriptions(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Detection complete: %d subscriptions", len(subs))))
			fmt.Fprint(out, renderSubscriptions(subs))
			return nil
		},
	}
}

func subscriptionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known subscriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			subs, err := store.GetSubscriptions(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(subs) == 0 {
				fmt.Fprintln(out, cli.FormatInfo("No subscriptions recorded. Run: smsledger subscriptions detect"))
				return nil
			}
			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Subscriptions (%d)", len(subs))))
			fmt.Fprint(out, renderSubscriptions(subs))
			return nil
		},
	}
}

func renderSubscriptions(subs []model.Subscription) string {
	var b strings.Builder
	for _, sub := range subs {
		source := "detected"
		if sub.IsEMandate {
			source = "e-mandate"
		}
		fmt.Fprintf(&b, "  %s\n", cli.BoldStyle.Render(sub.MerchantName))
		fmt.Fprintf(&b, "    %s %s, %s, %s\n",
			sub.Amount.StringFixed(2),
			strings.ToLower(string(sub.Frequency)),
			strings.ToLower(string(sub.Status)),
			source)
		if sub.PaymentCount > 0 {
			fmt.Fprintf(&b, "    %d payments, %s total, avg %s\n",
				sub.PaymentCount, sub.TotalPaid.StringFixed(2), sub.AverageAmount.StringFixed(2))
		}
		if !sub.NextPaymentDate.IsZero() {
			fmt.Fprintf(&b, "    next payment %s\n", sub.NextPaymentDate.Format("2006-01-02"))
		}
	}
	return b.String()
}
