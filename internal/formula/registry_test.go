package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	t.Parallel()

	f := ByID(114)
	require.NotNil(t, f)
	assert.Equal(t, "Picea abies", f.Species)
	assert.Equal(t, "Poland", f.Country)

	// Formula numbers without an implemented equation return nil.
	assert.Nil(t, ByID(3))
	assert.Nil(t, ByID(230))
}

func TestRegistryUnitsAreValid(t *testing.T) {
	t.Parallel()

	diameterUnits := map[Unit]bool{UnitMM: true, UnitCM: true, UnitDM: true, UnitM: true}
	heightUnits := map[Unit]bool{UnitDM: true, UnitM: true}
	volumeUnits := map[VolumeUnit]bool{VolumeDM3: true, VolumeM3: true, VolumeLnDM3: true, VolumeLnM3: true}

	for _, f := range All() {
		assert.Positive(t, f.ID, "formula ID")
		assert.NotEmpty(t, f.Species, "formula %d species", f.ID)
		assert.NotEmpty(t, f.Country, "formula %d country", f.ID)
		assert.True(t, diameterUnits[f.DiameterUnit], "formula %d diameter unit %q", f.ID, f.DiameterUnit)
		if f.NeedsHeight() {
			assert.True(t, heightUnits[f.HeightUnit], "formula %d height unit %q", f.ID, f.HeightUnit)
		}
		assert.True(t, volumeUnits[f.VolumeUnit], "formula %d volume unit %q", f.ID, f.VolumeUnit)
	}
}

func TestEveryFormulaReachableFromItsGenus(t *testing.T) {
	t.Parallel()

	for _, f := range All() {
		found := false
		for _, g := range ForGenus(f.Genus()) {
			if g.ID == f.ID {
				found = true
				break
			}
		}
		assert.True(t, found, "formula %d not reachable from genus %s", f.ID, f.Genus())
	}
}

func TestForGenus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		genus string
		ids   []int
	}{
		{"Abies", []int{1, 2, 4, 5, 6}},
		{"Acer", []int{9, 11}},
		{"Alnus", []int{16, 18}},
		{"Betula", []int{34}},
		{"Fagus", []int{50}},
		{"Larix", []int{66}},
		{"Picea", []int{82, 98, 114, 130}},
		{"Malus", nil},
		{"Quercus", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.genus, func(t *testing.T) {
			t.Parallel()
			formulas := ForGenus(tt.genus)
			ids := make([]int, 0, len(formulas))
			for _, f := range formulas {
				ids = append(ids, f.ID)
			}
			if tt.ids == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

// TestFormulasProducePlausibleVolumes checks every implemented equation with
// a typical measurement, a tree of 300 mm diameter at breast height and
// 100 dm height.
func TestFormulasProducePlausibleVolumes(t *testing.T) {
	t.Parallel()

	for _, f := range All() {
		volume, err := f.Evaluate(300, 100)
		require.NoError(t, err, "formula %d", f.ID)
		assert.False(t, math.IsNaN(volume) || math.IsInf(volume, 0), "formula %d produced %v", f.ID, volume)
		assert.Greater(t, volume, 0.0, "formula %d", f.ID)
		assert.Less(t, volume, 10.0, "formula %d: %v m3 is implausible for a 30 cm tree", f.ID, volume)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, f := range All() {
		first, err := f.Evaluate(217, 83)
		require.NoError(t, err)
		second, err := f.Evaluate(217, 83)
		require.NoError(t, err)
		assert.Equal(t, first, second, "formula %d", f.ID)
	}
}
