package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywiseai/smsledger/internal/bank"
	"github.com/pennywiseai/smsledger/internal/cli"
)

func banksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List the registered institution parsers",
		Long: `Print every registered parser in dispatch order.

Messages are routed to the first parser whose sender check matches, so
the order shown here is the dispatch priority. The generic fallback is
always last and accepts every sender.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Registered parsers"))
			for i, parser := range bank.NewRegistry().Parsers() {
				fmt.Fprintf(out, "  %2d. %s\n", i+1, parser.Name())
			}
		},
	}
}
