package formula

import (
	"math"
	"sort"
)

// registry holds every implemented volume equation, in formula ID order.
// Coefficients and algebra follow the monograph's tables verbatim.
var registry = []*Formula{
	{
		ID: 1, Species: "Abies alba", Country: "Norway",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e, f = 1.6662, 3.2394, 1.9335, -1.8997, -0.9739
			return a * math.Pow(h, b) * math.Pow(d, c) * math.Pow(h-1.3, e) * math.Pow(d+100, f)
		},
	},
	{
		ID: 2, Species: "Abies grandis", Country: "Netherlands",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c = 1.77220, 0.96736, -2.45224
			return math.Pow(d, a) * math.Pow(h, b) * math.Exp(c)
		},
	},
	{
		ID: 4, Species: "Abies sibirica", Country: "Germany",
		DiameterUnit: UnitCM, VolumeUnit: VolumeM3,
		eval: func(d, _ float64) float64 {
			const a, b = 0.0001316, 2.52
			return a * math.Pow(d, b)
		},
	},
	{
		// Pollanschütz, J. 1974. Formzahlfunktionen der Hauptbaumarten
		// Österreichs. Allgemeine Forstzeitung 85: 341-343.
		ID: 5, Species: "Abies spp.", Country: "Austria",
		DiameterUnit: UnitDM, HeightUnit: UnitDM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e, f, g, i = 0.580223, -0.0307373, -17.1507, 0.089869, -0.080557, 19.661, -2.4584
			lnD := math.Log(d)
			return (math.Pi / 4) * (a*d*d*h + b*d*d*h*lnD*lnD + c*d*d + e*d*h + f*h + g*d + i)
		},
	},
	{
		ID: 6, Species: "Abies spp.", Country: "Austria",
		DiameterUnit: UnitDM, HeightUnit: UnitDM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e = 0.560673, 0.15468, -0.65583, 0.033210
			lnD := math.Log(d)
			return (math.Pi / 4) * (a*d*d*h + b*d*d*h*lnD*lnD + c*d*d + e*d*h)
		},
	},
	{
		ID: 9, Species: "Acer pseudoplatanus", Country: "Belgium",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e, f, g = 0.010343, -0.00450536, 0.0003407, -0.000004042, 0.00077115, 0.000029836
			return a + b*d + c*d*d + e*d*d*d + f*h + g*d*d*h
		},
	},
	{
		ID: 11, Species: "Acer pseudoplatanus", Country: "Romania",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e, f = 0.00035375, 1.02, 0.3997, 0.666, 0.021
			logD := math.Log10(d)
			logH := math.Log10(h)
			return a * math.Pow(10, b*logD+c*logD*logD+e*logH+f*logH*logH)
		},
	},
	{
		ID: 16, Species: "Alnus glutinosa", Country: "Norway",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e = 0.6716, 0.75708, 0.029679, 0.004341
			return a + b*d*d + c*d*d*h + e + h*h*d
		},
	},
	{
		ID: 18, Species: "Alnus glutinosa", Country: "Sweden",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c = 0.05437, 1.94505, 0.92947
			return a * math.Pow(d, b) * math.Pow(h, c)
		},
	},
	{
		ID: 34, Species: "Betula spp.", Country: "Sweden",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e, f = -0.89359, 2.27954, -1.18672, 7.07362, -5.45175
			return math.Pow(10, a) * math.Pow(d, b) * math.Pow(d*20, c) * math.Pow(h, e) * math.Pow(h-1.3, f)
		},
	},
	{
		ID: 50, Species: "Fagus sylvatica", Country: "Germany",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeM3,
		eval: func(d, h float64) float64 {
			const a, b, c = -15.589e-3, 0.01696e-3, 0.01883e-3
			return a*b*d*h*h + c*d*d*d
		},
	},
	{
		ID: 66, Species: "Larix decidua", Country: "Belgium",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e, f, g = -0.03088, 0.004676261, -4.8614e-5, -3.8178e-6, -0.0011638, 4.0597e-5
			return a + b*d + c*d*d + e*d*d*d + f*h + g*d*d*h
		},
	},
	{
		ID: 82, Species: "Picea abies", Country: "Austria",
		DiameterUnit: UnitDM, HeightUnit: UnitDM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e, f, g = 0.46818, -0.013919, -28.213, 0.37474, -0.28875, 28.279
			lnD := math.Log(d)
			return (math.Pi / 4) * (a*d*d*h + b*d*d*h*lnD*lnD + c*d*d + e*d*h + f*h + g*d)
		},
	},
	{
		ID: 98, Species: "Picea abies", Country: "Netherlands",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c, e = 0.00053238, 2.164126647, -0.04670018, 0.54879808
			return a * math.Pow(d, b+c) * math.Pow(h, e)
		},
	},
	{
		ID: 114, Species: "Picea abies", Country: "Poland",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeM3,
		eval: func(d, h float64) float64 {
			const a, b = 0.666151, 0.458507
			return (math.Pi / 40000) * h * d * (a + b*d)
		},
	},
	{
		ID: 130, Species: "Picea spp.", Country: "Iceland",
		DiameterUnit: UnitCM, HeightUnit: UnitM, VolumeUnit: VolumeDM3,
		eval: func(d, h float64) float64 {
			const a, b, c = 0.0739, 1.7508, 1.0228
			return a * math.Pow(d, b) * math.Pow(h, c)
		},
	},
}

var (
	byID            map[int]*Formula
	formulasByGenus map[string][]*Formula
)

func init() {
	byID = make(map[int]*Formula, len(registry))
	formulasByGenus = make(map[string][]*Formula)

	for _, f := range registry {
		byID[f.ID] = f

		// A formula applies to a genus when the genus dictionary lists the
		// formula's species as applicable.
		genus := f.Genus()
		info, ok := genera[genus]
		if !ok {
			continue
		}
		for _, name := range info.ScientificNames {
			if name == f.Species {
				formulasByGenus[genus] = append(formulasByGenus[genus], f)
				break
			}
		}
	}

	for _, formulas := range formulasByGenus {
		sort.Slice(formulas, func(i, j int) bool { return formulas[i].ID < formulas[j].ID })
	}
}

// All returns every implemented formula in ID order.
func All() []*Formula {
	return registry
}

// ByID returns the formula with the given ID, or nil when not implemented.
func ByID(id int) *Formula {
	return byID[id]
}

// ForGenus returns the formulas applicable to the given genus in ID order.
// The result is empty for genera without implemented formulas.
func ForGenus(genus string) []*Formula {
	return formulasByGenus[genus]
}
