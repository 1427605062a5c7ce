package calculate

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/stem-volumes/internal/conf"
	"github.com/tphakala/stem-volumes/internal/pipeline"
)

// Command creates the calculate command, the core pipeline: load the input
// CSV, evaluate the applicable volume formulas per record and write the
// augmented table.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate <input.csv> <output.csv>",
		Short: "Calculate stem volumes for the given CSV file",
		Long: `Calculate reads tree measurement records, resolves the volume formulas
applicable to each record's species, evaluates them and appends one volume
column per formula to the output CSV.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings.Input.Path = args[0]
			settings.Output.Path = args[1]
			return pipeline.Run(settings)
		},
	}

	return cmd
}
