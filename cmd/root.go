package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/stem-volumes/cmd/calculate"
	"github.com/tphakala/stem-volumes/cmd/clean"
	"github.com/tphakala/stem-volumes/cmd/duplicates"
	"github.com/tphakala/stem-volumes/cmd/formulas"
	"github.com/tphakala/stem-volumes/internal/conf"
	"github.com/tphakala/stem-volumes/internal/logging"
	"github.com/tphakala/stem-volumes/internal/pipeline"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stem-volumes [input.csv output.csv]",
		Short: "Calculate stem volumes for tree measurement CSV files",
		Long: `stem-volumes reads tree measurement records from a CSV file, computes stem
volume estimates per tree using published allometric formulas and writes the
augmented table to an output CSV.

Running the command with an input and output file is a shorthand for the
calculate subcommand.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if len(args) != 2 {
				return fmt.Errorf("expected an input and an output file, got %d argument(s)", len(args))
			}
			settings.Input.Path = args[0]
			settings.Output.Path = args[1]
			return pipeline.Run(settings)
		},
	}

	// Set up the global flags for the root command.
	if err := setupFlags(rootCmd, settings); err != nil {
		fmt.Printf("error setting up flags: %v\n", err)
		os.Exit(1)
	}

	// Add sub-commands to the root command.
	subcommands := []*cobra.Command{
		calculate.Command(settings),
		clean.Command(settings),
		duplicates.Command(settings),
		formulas.Command(),
	}
	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Sync the settings struct with viper's values so command line
		// arguments take precedence over the config file.
		settings.Debug = viper.GetBool("debug")
		settings.Calculate.OnError = viper.GetString("calculate.onerror")
		settings.Output.Overwrite = viper.GetBool("output.overwrite")
		if settings.Debug {
			logging.SetLevel(slog.LevelDebug)
		}
		return conf.ValidateSettings(settings)
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Calculate.OnError, "on-error", viper.GetString("calculate.onerror"), "Row error policy: fail terminates on the first error, skip leaves the row empty")
	rootCmd.PersistentFlags().BoolVar(&settings.Output.Overwrite, "overwrite", viper.GetBool("output.overwrite"), "Allow overwriting an existing output file")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	if err := viper.BindPFlag("calculate.onerror", rootCmd.PersistentFlags().Lookup("on-error")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}
	if err := viper.BindPFlag("output.overwrite", rootCmd.PersistentFlags().Lookup("overwrite")); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
