package formula

// GenusInfo lists which scientific names a genus accepts equations for and
// which common species names resolve to it.
type GenusInfo struct {
	ScientificNames []string // equation species applicable to the genus
	CommonNames     []string // common names mapped to the genus
}

// genera is the genus dictionary used for species name matching. Several
// common names, like "Other Conifers", appear under more than one genus; a
// match then yields the union of the genera's formulas.
var genera = map[string]GenusInfo{
	"Abies": {
		ScientificNames: []string{"Abies alba", "Abies grandis", "Abies sibirica", "Abies spp."},
		CommonNames:     []string{"silver fir", "grand fir", "other firs"},
	},
	"Acer": {
		ScientificNames: []string{"Acer pseudoplatanus"},
		CommonNames:     []string{"sycamore maple", "field maple", "Norway maple"},
	},
	"Acacia": {
		ScientificNames: []string{"Acacia spp."},
		CommonNames:     []string{"black locust"},
	},
	"Alnus": {
		ScientificNames: []string{"Alnus glutinosa", "Alnus incana", "Alnus alba", "Alnus nigra", "Alnus spp."},
		CommonNames:     []string{"black alder", "grey alder", "misc. deciduous trees with short life expectancy"},
	},
	"Arbutus": {
		ScientificNames: []string{"Arbutus unedo"},
		CommonNames:     []string{"misc. deciduous trees with short life expectancy"},
	},
	"Betula": {
		ScientificNames: []string{"Betula pendula", "Betula spp."},
		CommonNames: []string{
			"silver birch", "Betula pubescens", "Betula pubescens var. glabrata",
			"misc. deciduous trees with short life expectancy",
		},
	},
	"Carpinus": {
		ScientificNames: []string{"Carpinus spp."},
		CommonNames:     []string{"hornbeam"},
	},
	"Chamaecyparis": {
		ScientificNames: []string{"Chamaecyparis lawsoniana"},
		CommonNames:     []string{"Other Conifers"},
	},
	"Corylus": {
		ScientificNames: []string{"Corylus avellana"},
		CommonNames:     []string{"misc. deciduous trees with short life expectancy"},
	},
	"Fagus": {
		ScientificNames: []string{"Fagus sylvatica", "Fagus spp."},
		CommonNames:     []string{"beech"},
	},
	"Fraxinus": {
		ScientificNames: []string{"Fraxinus excelsior", "Fraxinus spp."},
		CommonNames:     []string{"common ash"},
	},
	"Larix": {
		ScientificNames: []string{"Larix decidua", "Larix kaempferi", "Larix hybrid", "Larix sibirica", "Larix spp."},
		CommonNames:     []string{"European larch", "Japanese larch", "Other Conifers"},
	},
	"Picea": {
		ScientificNames: []string{"Picea sitchensis", "Picea abies", "Picea spp.", "Picea engelmannii"},
		CommonNames:     []string{"Sitka spruce", "Norway spruce", "other spruces", "Other Conifers"},
	},
	"Pinus": {
		ScientificNames: []string{"Pinus sylvestris", "Pinus nigra var maritima", "Pinus contorta", "Pinus spp."},
		CommonNames: []string{
			"Scots pine", "eastern white pine", "mountain pine", "European black pine",
			"Pinus cembra", "other pines", "Other Conifers",
		},
	},
	"Populus": {
		ScientificNames: []string{"Populus trichocarpa", "Populus spp.", "Populus tremula"},
		CommonNames: []string{
			"European black poplar", "balsam poplar", "silver poplar", "grey poplar",
			"common aspen", "misc. deciduous trees with short life expectancy",
		},
	},
	"Prunus": {
		ScientificNames: []string{"Prunus avium"},
		CommonNames:     []string{"wild cherry", "black cherry", "bird cherry"},
	},
	"Pseudotsuga": {
		ScientificNames: []string{"Pseudotsuga menziesii", "Pseudotsuga spp."},
		CommonNames:     []string{"Douglas fir", "Other Conifers"},
	},
	"Quercus": {
		ScientificNames: []string{
			"Quercus rubra", "Quercus robur", "Quercus grisea", "Quercus ilex",
			"Quercus laevis", "Quercus pubescens", "Quercus spp.",
		},
		CommonNames: []string{
			"northern red oak", "English oak", "sessile oak",
			"misc. deciduous trees with long life expectancy",
		},
	},
	"Salix": {
		ScientificNames: []string{"Salix caprea", "Salix spp."},
		CommonNames:     []string{"willow", "misc. deciduous trees with short life expectancy"},
	},
	"Sorbus": {
		ScientificNames: []string{"Sorbus aucuparia"},
		CommonNames:     []string{"European rowan", "common whitebeam", "service tree", "wild service tree"},
	},
	"Thuja": {
		ScientificNames: []string{"Thuja plicata"},
		CommonNames:     []string{"Other Conifers"},
	},
	"Tilia": {
		ScientificNames: []string{"Tilia cordata"},
		CommonNames:     []string{"linden tree"},
	},
	"Tsuga": {
		ScientificNames: []string{"Tsuga heterophylla"},
		CommonNames:     []string{"Other Conifers"},
	},
	"Ulmus": {
		ScientificNames: []string{"Ulmus spp."},
		CommonNames:     []string{"elm, native species"},
	},
	// Genera known to the dictionary but without any volume equation.
	"Malus":    {CommonNames: []string{"European crab apple"}},
	"Pyrus":    {CommonNames: []string{"European wild pear"}},
	"Taxus":    {CommonNames: []string{"European yew"}},
	"Castanea": {CommonNames: []string{"chestnut"}},
}

// Genera returns the names of all known genera.
func Genera() []string {
	names := make([]string, 0, len(genera))
	for name := range genera {
		names = append(names, name)
	}
	return names
}
