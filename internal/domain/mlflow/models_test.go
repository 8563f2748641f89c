//go:build unit
// +build unit

package mlflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeStage(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		shouldErr bool
	}{
		{"canonical production", "Production", StageProduction, false},
		{"lowercase staging", "staging", StageStaging, false},
		{"uppercase archived", "ARCHIVED", StageArchived, false},
		{"padded none", "  none ", StageNone, false},
		{"unknown stage", "released", "", true},
		{"empty stage", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, err := NormalizeStage(tt.input)
			if tt.shouldErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, stage)
		})
	}
}

func TestRunModelSource(t *testing.T) {
	require.Equal(t, "runs:/run-42/model", RunModelSource("run-42"))
}
