package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pedrohavay/datefield/datefield"
)

func (a *app) newSuggestCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest <value>",
		Short: "List the valid dates closest to a value",
		Long: `Rank every date between 1900 and 2100 by edit distance to the digits
of value and print the closest ones. The default count comes from
suggest.limit in the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Suggest.Limit
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			got := datefield.Suggest(args[0], limit)
			if len(got) == 0 {
				return &ExitError{Code: 1, Err: fmt.Errorf("no digits in %q", args[0])}
			}
			a.logger.Debug("suggested", "value", args[0], "count", len(got), "best", got[0].Distance)

			w := cmd.OutOrStdout()
			enc := json.NewEncoder(w)
			for _, s := range got {
				if a.jsonOutput() {
					if err := enc.Encode(s); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(w, "%s %d\n", ValueStyle.Render(s.Date.String()), s.Distance)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "number of suggestions")
	return cmd
}
