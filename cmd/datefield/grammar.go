package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pedrohavay/datefield/pattern"
)

func (a *app) newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Inspect the grammar behind a field type",
	}
	cmd.AddCommand(a.newGrammarDumpCmd(), a.newGrammarStatsCmd())
	return cmd
}

func (a *app) newGrammarDumpCmd() *cobra.Command {
	var typeName, format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a type's grammar in grammar-file form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.registry.Lookup(typeName)
			if err != nil {
				return err
			}
			node := pattern.Describe(t.Pattern())
			w := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(node); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(node)
			default:
				return fmt.Errorf("unknown grammar format %q (want yaml or json)", format)
			}
		},
	}
	addTypeFlag(cmd, &typeName)
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "grammar format: yaml or json")
	return cmd
}

type grammarStats struct {
	Type         string `json:"type"`
	Literals     int    `json:"literals"`
	Sequences    int    `json:"sequences"`
	Choices      int    `json:"choices"`
	Nodes        int    `json:"nodes"`
	Depth        int    `json:"depth"`
	Alternatives int    `json:"alternatives"`
}

func (a *app) newGrammarStatsCmd() *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count the nodes and derivations of a type's grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.registry.Lookup(typeName)
			if err != nil {
				return err
			}
			s := pattern.StatsOf(t.Pattern())
			st := grammarStats{
				Type:         t.Name(),
				Literals:     s.Literals,
				Sequences:    s.Sequences,
				Choices:      s.Choices,
				Nodes:        s.Nodes(),
				Depth:        s.Depth,
				Alternatives: pattern.Alternatives(t.Pattern()),
			}

			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				return json.NewEncoder(w).Encode(st)
			}
			rows := []struct {
				label string
				value int
			}{
				{"literals", st.Literals},
				{"sequences", st.Sequences},
				{"choices", st.Choices},
				{"nodes", st.Nodes},
				{"depth", st.Depth},
				{"alternatives", st.Alternatives},
			}
			fmt.Fprintln(w, TitleStyle.Render(st.Type))
			for _, r := range rows {
				fmt.Fprintf(w, "%s %d\n", SubtitleStyle.Render(r.label+":"), r.value)
			}
			return nil
		},
	}
	addTypeFlag(cmd, &typeName)
	return cmd
}
