package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pennywiseai/smsledger/internal/cli"
	"github.com/pennywiseai/smsledger/internal/common"
	"github.com/pennywiseai/smsledger/internal/config"
	"github.com/pennywiseai/smsledger/internal/engine"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <batch-file>",
		Short: "Scan a batch file of messages into the ledger",
		Long: `Parse a batch of messages and record the results.

The batch file is JSON lines: one {"sender", "body", "timestamp"} object
per line, timestamps in RFC 3339. Messages already in the ledger are
skipped via the identity hash, so re-scanning the same export is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	cmd.Flags().Int("workers", 0, "parsing parallelism (default: scan.workers config or 4)")
	cmd.Flags().Bool("detect", false, "run subscription detection after the scan")
	_ = viper.BindPFlag("scan.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	messages, err := engine.LoadMessages(config.ExpandPath(args[0]))
	if err != nil {
		return common.NewUserError("could not read batch file", err)
	}
	if len(messages) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("Batch file contains no messages"))
		return nil
	}

	bar := progressbar.NewOptions(len(messages),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Scanning messages...[reset]"),
	)

	engineCfg := config.LoadEngineConfig()
	engineCfg.Progress = func() { _ = bar.Add(1) }

	runDetect, _ := cmd.Flags().GetBool("detect")

	e, store, err := initEngine(cmd.Context(), engineCfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	interrupts := cli.NewInterruptHandler(cmd.OutOrStdout())
	ctx := interrupts.HandleInterrupts(cmd.Context(), true)

	stats, err := e.Scan(ctx, messages)
	_ = bar.Finish()
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		if interrupts.WasInterrupted() {
			return nil
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Scanned %d messages", stats.Total)))
	fmt.Fprintf(out, "  Transactions:    %d (%d new, %d already recorded)\n",
		stats.Transactions, stats.Inserted, stats.Duplicates)
	fmt.Fprintf(out, "  Mandate notices: %d\n", stats.Mandates)
	fmt.Fprintf(out, "  Balance updates: %d\n", stats.BalanceUpdates)
	fmt.Fprintf(out, "  Not parseable:   %d\n", stats.Skipped)

	if runDetect {
		subs, detectErr := e.DetectSubscriptions(ctx)
		if detectErr != nil {
			return detectErr
		}
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Subscription detection found %d aggregates", len(subs))))
	}

	return nil
}
