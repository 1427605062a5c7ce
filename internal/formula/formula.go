// Package formula implements published allometric stem volume formulas and
// the lookup tables that map tree species to the formulas applicable to them.
//
// The formulas are from Zianis, Muukkonen, Mäkipää & Mencuccini: Biomass and
// stem volume equations for tree species in Europe, Silva Fennica Monographs
// 4 (https://doi.org/10.14214/sf.sfm4), Appendix B and C. Formula IDs are
// the row numbers of the monograph's volume equation tables.
package formula

import (
	"fmt"
	"strings"
)

// Unit is a measurement unit for diameter and height inputs.
type Unit string

const (
	UnitMM Unit = "mm"
	UnitCM Unit = "cm"
	UnitDM Unit = "dm"
	UnitM  Unit = "m"
)

// VolumeUnit is the unit of a formula's raw result. Some equations return
// the natural logarithm of the volume.
type VolumeUnit string

const (
	VolumeDM3   VolumeUnit = "dm3"
	VolumeM3    VolumeUnit = "m3"
	VolumeLnDM3 VolumeUnit = "ln(dm3)"
	VolumeLnM3  VolumeUnit = "ln(m3)"
)

// Formula is a single stem volume equation. The evaluation function is pure;
// a Formula is constructed once and never mutated.
type Formula struct {
	ID           int        // formula number in the monograph
	Species      string     // scientific name the equation was fitted for
	Country      string     // country the sample trees were measured in
	DiameterUnit Unit       // unit the equation expects for diameter at breast height
	HeightUnit   Unit       // unit for height, empty when the equation uses diameter only
	VolumeUnit   VolumeUnit // unit of the raw result
	eval         func(d, h float64) float64
}

// NeedsHeight reports whether the equation requires a height measurement.
func (f *Formula) NeedsHeight() bool {
	return f.HeightUnit != ""
}

// Genus returns the genus part of the species name.
func (f *Formula) Genus() string {
	genus, _, _ := strings.Cut(f.Species, " ")
	return genus
}

// ColumnName returns the output CSV column name for this formula.
func (f *Formula) ColumnName() string {
	return fmt.Sprintf("stem_volume_formula_%d [m3]", f.ID)
}

// Evaluate computes the stem volume in m3 from raw measurements: diameter at
// breast height in millimetres and height in decimetres. The measurements are
// converted to the units the equation expects before evaluation, and the raw
// result is converted to m3.
func (f *Formula) Evaluate(diameterMM, heightDM float64) (float64, error) {
	d := ConvertMeasurement(diameterMM, UnitMM, f.DiameterUnit)
	var h float64
	if f.NeedsHeight() {
		h = ConvertMeasurement(heightDM, UnitDM, f.HeightUnit)
	}
	return ConvertVolumeToM3(f.eval(d, h), f.VolumeUnit)
}
