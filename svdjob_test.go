package blasym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSVDJob(t *testing.T) {
	t.Parallel()

	// Both the long and short spelling of each mode map to the same code.
	tests := []struct {
		token string
		want  SVDJob
		code  byte
	}{
		{"all", SVDAll, 'A'},
		{"a", SVDAll, 'A'},
		{"return", SVDReturn, 'S'},
		{"s", SVDReturn, 'S'},
		{"overwrite", SVDOverwrite, 'O'},
		{"o", SVDOverwrite, 'O'},
		{"none", SVDNone, 'N'},
		{"n", SVDNone, 'N'},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseSVDJob(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.LAPACK())
		})
	}
}

func TestParseSVDJobRejectsUnknown(t *testing.T) {
	t.Parallel()

	// Only the listed spellings are recognized; there is no case folding.
	inputs := []any{"ALL", "All", "economy", "x", nil, false, true}
	for _, input := range inputs {
		_, err := ParseSVDJob(input)
		require.Error(t, err, "input %v", input)
		assert.True(t, IsInvalidArgError(err))
		assert.Contains(t, err.Error(),
			"all, a, return, s, overwrite, o, none, or n")
	}
}
