package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pedrohavay/datefield/datefield"
)

func (a *app) newValidateCmd() *cobra.Command {
	var typeName, in, format string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Turn values read from stdin into verdict records",
		Long: `Read values from stdin, one per line (--in lines) or as JSON objects
with a "value" field (--in jsonl), and write one verdict record per value
as jsonl, csv or msgpack. Rejected values do not change the exit status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.registry.Lookup(typeName)
			if err != nil {
				return err
			}

			var verdicts []datefield.Verdict
			rejected := 0
			collect := func(value string) error {
				v := datefield.Check(t, value)
				a.logVerdict(t, v)
				if !v.Valid {
					rejected++
				}
				verdicts = append(verdicts, v)
				return nil
			}
			switch in {
			case "lines":
				err = datefield.ReadValues(cmd.InOrStdin(), collect)
			case "jsonl":
				err = datefield.ReadValuesJSONL(cmd.InOrStdin(), collect)
			default:
				return fmt.Errorf("unknown input format %q (want lines or jsonl)", in)
			}
			if err != nil {
				return fmt.Errorf("read values: %w", err)
			}
			a.logger.Debug("validated", "type", t.Name(), "values", len(verdicts), "rejected", rejected)

			w := cmd.OutOrStdout()
			switch format {
			case "jsonl":
				return datefield.WriteVerdictsJSONL(w, verdicts)
			case "csv":
				return datefield.WriteVerdictsCSV(w, verdicts)
			case "msgpack":
				return datefield.WriteVerdictsMsgpack(w, verdicts)
			default:
				return fmt.Errorf("unknown record format %q (want jsonl, csv or msgpack)", format)
			}
		},
	}
	addTypeFlag(cmd, &typeName)
	cmd.Flags().StringVar(&in, "in", "lines", "input format: lines or jsonl")
	cmd.Flags().StringVarP(&format, "format", "f", "jsonl", "record format: jsonl, csv or msgpack")
	return cmd
}
