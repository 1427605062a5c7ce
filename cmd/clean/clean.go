package clean

import (
	"github.com/spf13/cobra"

	"github.com/tphakala/stem-volumes/internal/conf"
	"github.com/tphakala/stem-volumes/internal/dataset"
	"github.com/tphakala/stem-volumes/internal/logging"
)

// Command creates the clean command for normalizing a measurement CSV before
// calculation: duplicate rows are dropped, missing values forward-filled and
// species names capitalized.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean <input.csv> <output.csv>",
		Short: "Clean a measurement CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.ReadCSV(args[0])
			if err != nil {
				return err
			}

			result := ds.Clean()
			logging.Info("cleaned dataset",
				"path", args[0],
				"dropped_duplicates", result.DroppedDuplicates,
				"filled_cells", result.FilledCells,
				"rows", len(ds.Rows))

			return ds.WriteCSV(args[1], settings.Output.Overwrite)
		},
	}

	return cmd
}
