package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered field types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			enc := json.NewEncoder(w)
			for _, name := range a.registry.Names() {
				t := a.registry.Get(name)
				if a.jsonOutput() {
					if err := enc.Encode(map[string]string{"name": name, "label": t.Label()}); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(w, "%s %s\n", ValueStyle.Render(name), SubtitleStyle.Render(t.Label()))
			}
			return nil
		},
	}
}
