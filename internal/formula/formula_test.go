package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluateConvertsUnits verifies the full evaluation path: raw
// measurements in mm and dm are converted to the equation's units and the
// result is converted to m3.
func TestEvaluateConvertsUnits(t *testing.T) {
	t.Parallel()

	t.Run("formula_114_cm_m_inputs_m3_result", func(t *testing.T) {
		t.Parallel()
		f := ByID(114)
		require.NotNil(t, f)

		// 300 mm -> 30 cm, 100 dm -> 10 m
		expected := (math.Pi / 40000) * 10 * 30 * (0.666151 + 0.458507*30)
		got, err := f.Evaluate(300, 100)
		require.NoError(t, err)
		assert.InEpsilon(t, expected, got, 1e-12)
	})

	t.Run("formula_4_diameter_only", func(t *testing.T) {
		t.Parallel()
		f := ByID(4)
		require.NotNil(t, f)
		assert.False(t, f.NeedsHeight())

		expected := 0.0001316 * math.Pow(30, 2.52)
		got, err := f.Evaluate(300, 0)
		require.NoError(t, err)
		assert.InEpsilon(t, expected, got, 1e-12)
	})

	t.Run("formula_5_dm_inputs_dm3_result", func(t *testing.T) {
		t.Parallel()
		f := ByID(5)
		require.NotNil(t, f)

		// 300 mm -> 3 dm, height stays 100 dm; result in dm3 scaled to m3.
		d, h := 3.0, 100.0
		lnD := math.Log(d)
		raw := (math.Pi / 4) * (0.580223*d*d*h - 0.0307373*d*d*h*lnD*lnD - 17.1507*d*d +
			0.089869*d*h - 0.080557*h + 19.661*d - 2.4584)
		got, err := f.Evaluate(300, 100)
		require.NoError(t, err)
		assert.InEpsilon(t, raw/1000, got, 1e-12)
	})

	t.Run("formula_18_power_equation", func(t *testing.T) {
		t.Parallel()
		f := ByID(18)
		require.NotNil(t, f)

		expected := 0.05437 * math.Pow(30, 1.94505) * math.Pow(10, 0.92947) / 1000
		got, err := f.Evaluate(300, 100)
		require.NoError(t, err)
		assert.InEpsilon(t, expected, got, 1e-12)
	})
}

func TestColumnName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stem_volume_formula_82 [m3]", ByID(82).ColumnName())
	assert.Equal(t, "stem_volume_formula_4 [m3]", ByID(4).ColumnName())
}

func TestGenus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Picea", ByID(130).Genus())
	assert.Equal(t, "Abies", ByID(5).Genus())
}
