package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ticketgen/ticketgen/internal/ticket"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(charsetsCmd)
}

var charsetsCmd = &cobra.Command{
	Use:   "charsets",
	Short: "List the named charsets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

		for _, name := range ticket.Names() {
			charset, _ := ticket.Lookup(name)
			fmt.Fprintf(w, "%s\t%s\n", name, charset)
		}

		return w.Flush()
	},
}
