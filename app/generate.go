package app

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ticketgen/ticketgen/internal/service"
	"github.com/ticketgen/ticketgen/internal/ticket"
)

func init() { //nolint: gochecknoinits
	f := generateCmd.Flags()
	f.StringVarP(&genFlags.strategy, "strategy", "s", "", "library, secure, sampling or ascii (default from config)")
	f.StringVar(&genFlags.charset, "charset", "", "charset name or literal characters (default from config)")
	f.IntVarP(&genFlags.length, "length", "l", 0, "exact ticket length (default random within the configured range)")
	f.IntVarP(&genFlags.count, "count", "n", 1, "number of tickets")
	f.BoolVarP(&genFlags.verbose, "verbose", "v", false, "log to stderr")

	rootCmd.AddCommand(generateCmd)
}

var (
	genFlags struct {
		strategy string
		charset  string
		length   int
		count    int
		verbose  bool
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Print tickets, one per line",
		PreRun: func(_ *cobra.Command, _ []string) {
			if !genFlags.verbose {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			tickets, err := service.NewTicketService(cfg.Generator, ticket.GlobalSource, nil)
			if err != nil {
				return err
			}

			req := service.Request{
				Strategy: genFlags.strategy,
				Charset:  genFlags.charset,
				Count:    genFlags.count,
			}

			if cmd.Flags().Changed("length") {
				req.Length = &genFlags.length
			}

			batch, err := tickets.Generate(req)
			if err != nil {
				return err
			}

			for _, t := range batch.Tickets {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), t); err != nil {
					return err
				}
			}

			return nil
		},
	}
)
