package duplicates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tphakala/stem-volumes/internal/conf"
	"github.com/tphakala/stem-volumes/internal/dataset"
)

// Command creates the duplicates command, a report of duplicate rows in a
// measurement CSV: occurrence counts and the CSV line numbers per group.
func Command(settings *conf.Settings) *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "duplicates <input.csv>",
		Short: "Report duplicate rows in a measurement CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.ReadCSV(args[0])
			if err != nil {
				return err
			}

			groups := ds.FindDuplicates()
			if len(groups) == 0 {
				fmt.Println("No duplicate rows found.")
				return nil
			}

			dropped := 0
			for _, group := range groups {
				dropped += group.Count() - 1
				fmt.Printf("%dx lines %s: %s\n",
					group.Count(), joinLines(group.Lines), strings.Join(group.Row, ","))
			}
			fmt.Printf("%d duplicate group(s), %d row(s) would be dropped\n", len(groups), dropped)

			if reportPath != "" {
				if err := writeReport(ds, groups, reportPath, settings.Output.Overwrite); err != nil {
					return err
				}
				fmt.Println("Report written to", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&reportPath, "output", "o", "", "Path to write the duplicate report CSV to")

	return cmd
}

// writeReport saves the duplicate groups as a CSV with the original columns
// plus count and line number columns.
func writeReport(ds *dataset.Dataset, groups []dataset.DuplicateGroup, path string, overwrite bool) error {
	report := dataset.New(append(append([]string{}, ds.Columns...), "count", "lines"))
	for _, group := range groups {
		row := append(append([]string{}, group.Row...),
			strconv.Itoa(group.Count()), joinLines(group.Lines))
		report.AppendRow(row)
	}
	return report.WriteCSV(path, overwrite)
}

func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = strconv.Itoa(line)
	}
	return strings.Join(parts, " ")
}
