package formulas

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tphakala/stem-volumes/internal/formula"
)

// Command creates the formulas command, a listing of the implemented volume
// equations and the genera they apply to.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formulas",
		Short: "List the implemented stem volume formulas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSpecies\tCountry\tInputs\tResult")
			for _, f := range formula.All() {
				inputs := fmt.Sprintf("D [%s]", f.DiameterUnit)
				if f.NeedsHeight() {
					inputs = fmt.Sprintf("D [%s], H [%s]", f.DiameterUnit, f.HeightUnit)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", f.ID, f.Species, f.Country, inputs, f.VolumeUnit)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			genera := formula.Genera()
			sort.Strings(genera)
			fmt.Println()
			fmt.Println("Genus coverage:")
			for _, genus := range genera {
				formulas := formula.ForGenus(genus)
				if len(formulas) == 0 {
					fmt.Printf("  %s: no formulas\n", genus)
					continue
				}
				ids := make([]string, len(formulas))
				for i, f := range formulas {
					ids[i] = fmt.Sprint(f.ID)
				}
				fmt.Printf("  %s: %v\n", genus, ids)
			}
			return nil
		},
	}

	return cmd
}
