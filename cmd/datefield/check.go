package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pedrohavay/datefield/datefield"
)

func (a *app) newCheckCmd() *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "check <value>...",
		Short: "Report whether values are complete, partial or rejected",
		Long: `Check each value against a field type.

A value is complete when it is a whole valid entry, partial when more
typing could still make it complete, and rejected otherwise. The command
exits 1 if any value is rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.registry.Lookup(typeName)
			if err != nil {
				return err
			}
			verdicts := make([]datefield.Verdict, 0, len(args))
			rejected := 0
			for _, value := range args {
				v := datefield.Check(t, value)
				a.logVerdict(t, v)
				if !v.Valid {
					rejected++
				}
				verdicts = append(verdicts, v)
			}

			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				if err := datefield.WriteVerdictsJSONL(w, verdicts); err != nil {
					return err
				}
			} else {
				for _, v := range verdicts {
					printVerdict(w, v)
				}
			}
			if rejected > 0 {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
	addTypeFlag(cmd, &typeName)
	return cmd
}

func printVerdict(w io.Writer, v datefield.Verdict) {
	line := fmt.Sprintf("%q %s", v.Value, verdictStyle(v).Render(verdictWord(v)))
	if v.Formatted != "" && v.Formatted != v.Value {
		line += " " + ValueStyle.Render(v.Formatted)
	}
	fmt.Fprintln(w, line)
}

type formatted struct {
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

func (a *app) newFormatCmd() *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "format <value>...",
		Short: "Print complete values in their display form",
		Long: `Format complete values the way a date field does when it loses focus:
3152020 and 3-15-2020 both become 03/15/2020. Values that are not
complete are reported and the command exits 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.registry.Lookup(typeName)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			enc := json.NewEncoder(w)
			var failed []string
			for _, value := range args {
				out, ok := t.Clean(value)
				if !ok {
					failed = append(failed, fmt.Sprintf("%q", value))
					continue
				}
				if a.jsonOutput() {
					if err := enc.Encode(formatted{Value: value, Formatted: out}); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintln(w, out)
			}
			if len(failed) > 0 {
				return &ExitError{
					Code: 1,
					Err:  fmt.Errorf("not a complete %s: %s", t.Name(), strings.Join(failed, ", ")),
				}
			}
			return nil
		},
	}
	addTypeFlag(cmd, &typeName)
	return cmd
}
