package formula

import (
	"math"

	"github.com/tphakala/stem-volumes/internal/errors"
)

// conversionFactors holds the scale of each measurement unit in metres.
var conversionFactors = map[Unit]float64{
	UnitMM: 0.001,
	UnitCM: 0.01,
	UnitDM: 0.1,
	UnitM:  1,
}

// ConvertMeasurement converts a measurement value between units.
func ConvertMeasurement(value float64, from, to Unit) float64 {
	return value * conversionFactors[from] / conversionFactors[to]
}

// ConvertVolumeToM3 converts a raw formula result to cubic metres. Results in
// ln(...) units are exponentiated first.
func ConvertVolumeToM3(value float64, unit VolumeUnit) (float64, error) {
	switch unit {
	case VolumeM3:
		return value, nil
	case VolumeDM3:
		return value / 1000, nil
	case VolumeLnM3:
		return math.Exp(value), nil
	case VolumeLnDM3:
		return math.Exp(value) / 1000, nil
	default:
		return 0, errors.Newf("unknown volume unit %q", unit).
			Category(errors.CategoryUnitConversion).
			Context("unit", string(unit)).
			Build()
	}
}
