package formula

import (
	"regexp"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tphakala/stem-volumes/internal/errors"
)

// ErrUnknownSpecies is returned when a species name cannot be resolved to any
// known genus.
var ErrUnknownSpecies = errors.NewStd("unknown species")

// Match is the result of resolving a species name. A common name shared by
// several genera resolves to all of them; Formulas is the union of the
// genera's applicable formulas in ID order.
type Match struct {
	Query    string     // normalized species name
	Genera   []string   // matched genera, sorted
	Formulas []*Formula // applicable formulas, ID order
}

// commonNameIndex maps normalized common names to the genera listing them.
var commonNameIndex = map[string][]string{}

// scientificNameIndex maps normalized scientific names to their genus.
var scientificNameIndex = map[string]string{}

func init() {
	for genus, info := range genera {
		for _, name := range info.CommonNames {
			key := normalizeSpeciesName(name)
			commonNameIndex[key] = append(commonNameIndex[key], genus)
		}
		for _, name := range info.ScientificNames {
			scientificNameIndex[normalizeSpeciesName(name)] = genus
		}
	}
	for _, matched := range commonNameIndex {
		sort.Strings(matched)
	}
}

// Input files repeat a small set of species names across a large number of
// rows, so resolved matches are memoized.
var matchCache = gocache.New(30*time.Minute, 10*time.Minute)

var parenthetical = regexp.MustCompile(`\s*\(.*?\)`)

// normalizeSpeciesName removes parenthesized qualifiers, trims whitespace and
// lowercases the name.
func normalizeSpeciesName(name string) string {
	return strings.ToLower(strings.TrimSpace(parenthetical.ReplaceAllString(name, "")))
}

// MatchSpecies resolves a species cell value, either a common name or a
// scientific name, to the genera and formulas applicable to it. An
// unresolvable name returns an error wrapping ErrUnknownSpecies.
func MatchSpecies(name string) (*Match, error) {
	normalized := normalizeSpeciesName(name)
	if normalized == "" {
		return nil, errors.Newf("%w: empty species name", ErrUnknownSpecies).
			Category(errors.CategorySpeciesLookup).
			Build()
	}

	if cached, found := matchCache.Get(normalized); found {
		return cached.(*Match), nil
	}

	matched := lookupGenera(normalized)
	if len(matched) == 0 {
		return nil, errors.Newf("%w: %q", ErrUnknownSpecies, name).
			Category(errors.CategorySpeciesLookup).
			Context("species", name).
			Build()
	}

	match := &Match{
		Query:    normalized,
		Genera:   matched,
		Formulas: unionFormulas(matched),
	}
	matchCache.Set(normalized, match, gocache.DefaultExpiration)
	return match, nil
}

// lookupGenera resolves a normalized name against the genus dictionary.
func lookupGenera(normalized string) []string {
	// Scientific name, e.g. "Picea abies".
	if genus, ok := scientificNameIndex[normalized]; ok {
		return []string{genus}
	}

	// Bare genus name, e.g. "Picea".
	for genus := range genera {
		if strings.ToLower(genus) == normalized {
			return []string{genus}
		}
	}

	// Common name, possibly shared between genera.
	if matched, ok := commonNameIndex[normalized]; ok {
		return matched
	}

	return nil
}

// unionFormulas merges the formulas of the given genera, deduplicated and in
// ID order.
func unionFormulas(matched []string) []*Formula {
	seen := make(map[int]*Formula)
	for _, genus := range matched {
		for _, f := range ForGenus(genus) {
			seen[f.ID] = f
		}
	}

	formulas := make([]*Formula, 0, len(seen))
	for _, f := range seen {
		formulas = append(formulas, f)
	}
	sort.Slice(formulas, func(i, j int) bool { return formulas[i].ID < formulas[j].ID })
	return formulas
}
