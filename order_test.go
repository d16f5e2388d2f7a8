package blasym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LynnColeArt/blasym/cblas"
)

func TestParseOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  Order
	}{
		{"row", RowMajor},
		{"row_major", RowMajor},
		{"col", ColMajor},
		{"col_major", ColMajor},
		{"column", ColMajor},
		{"column_major", ColMajor},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseOrder(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// LAPACKE reuses the CBLAS magnitudes for layout, so the single enum
// mapping must carry the standard 101/102 values.
func TestOrderSharedMagnitudes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cblas.Order(101), RowMajor.CBLAS())
	assert.Equal(t, cblas.Order(102), ColMajor.CBLAS())
}

func TestParseOrderRejectsUnknown(t *testing.T) {
	t.Parallel()

	inputs := []any{"diagonal", "rows", "COLUMN", nil, false, 101}
	for _, input := range inputs {
		_, err := ParseOrder(input)
		require.Error(t, err, "input %v", input)
		assert.True(t, IsInvalidArgError(err))
		assert.Contains(t, err.Error(), "row or col")
	}
}
