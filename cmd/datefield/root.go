package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pedrohavay/datefield/datefield"
	"github.com/pedrohavay/datefield/internal/config"
	"github.com/pedrohavay/datefield/pattern"
)

// app carries the state shared by every subcommand once the root command
// has resolved configuration.
type app struct {
	cfgFile    string
	verbose    bool
	grammarDir string
	output     string

	cfg      *config.Config
	logger   *log.Logger
	registry *datefield.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "datefield",
		Short: "Check and format date field values",
		Long: TitleStyle.Render("datefield") + SubtitleStyle.Render(" - incremental validation for typed dates") + `

datefield checks values the way a date input does while it is being typed:
a value is complete, a prefix of some valid date (partial), or rejected.
Dates are MM/DD/YYYY with "/", "-" or no delimiter, years 1900 to 2100.

` + SubtitleStyle.Render("Examples:") + `
  datefield check 3/15/2020 02/3 13/13
  datefield format 3152020
  datefield suggest 02/30/2020
  datefield validate --format csv < values.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./datefield.yaml or $XDG_CONFIG_HOME/datefield/datefield.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.grammarDir, "grammar-dir", "", "directory of extra *.yaml grammar files")
	flags.StringVarP(&a.output, "output", "o", config.FormatText, "output format: text or json")

	root.AddCommand(
		a.newCheckCmd(),
		a.newFormatCmd(),
		a.newSuggestCmd(),
		a.newValidateCmd(),
		a.newGrammarCmd(),
		a.newTypesCmd(),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger
// and the type registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Load(config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("grammar-dir") {
		cfg.GrammarDir = a.grammarDir
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "datefield",
		Level:  level,
	})
	if path != "" {
		a.logger.Debug("loaded config", "path", path)
	}

	a.registry = datefield.NewRegistry()
	if cfg.GrammarDir != "" {
		names, err := a.registry.LoadGrammars(cfg.GrammarDir)
		if err != nil {
			return fmt.Errorf("load grammars: %w", err)
		}
		a.logger.Debug("loaded grammars", "dir", cfg.GrammarDir, "types", names)
	}
	return nil
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output.Format == config.FormatJSON
}

// logVerdict reports the raw outcome count behind a verdict at debug level.
func (a *app) logVerdict(t datefield.FieldType, v datefield.Verdict) {
	if a.logger.GetLevel() > log.DebugLevel {
		return
	}
	a.logger.Debug("checked",
		"type", v.Type,
		"value", v.Value,
		"outcomes", len(pattern.Run(datefield.Normalize(v.Value), t.Pattern())),
		"verdict", verdictWord(v),
	)
}

func verdictWord(v datefield.Verdict) string {
	return pattern.Verdict{Complete: v.Complete, Partial: v.Partial}.String()
}

func addTypeFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "type", "t", "date", "field type to check against (see 'datefield types')")
}
