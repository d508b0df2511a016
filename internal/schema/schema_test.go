package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidProgram(t *testing.T) {
	doc := map[string]any{
		"name": "bell",
		"instructions": []any{
			map[string]any{"name": "h", "qubits": []any{0.0}},
			map[string]any{"name": "measure", "qubits": []any{0.0}, "memory": []any{0.0}},
		},
	}
	assert.NoError(t, Check(doc))
}

func TestCheckValidProgramWithoutName(t *testing.T) {
	doc := map[string]any{
		"instructions": []any{
			map[string]any{"name": "snapshot", "params": []any{"probabilities"}},
		},
	}
	assert.NoError(t, Check(doc))
}

func TestCheckMissingInstructions(t *testing.T) {
	err := Check(map[string]any{"name": "bell"})
	require.Error(t, err)
}

func TestCheckInstructionMissingName(t *testing.T) {
	doc := map[string]any{
		"instructions": []any{
			map[string]any{"qubits": []any{0.0}},
		},
	}
	err := Check(doc)
	require.Error(t, err)

	var list ErrorList
	require.ErrorAs(t, err, &list)
	assert.NotEmpty(t, list)
}

func TestCheckInstructionEmptyName(t *testing.T) {
	doc := map[string]any{
		"instructions": []any{
			map[string]any{"name": ""},
		},
	}
	assert.Error(t, Check(doc))
}

func TestCheckNegativeQubitIndex(t *testing.T) {
	doc := map[string]any{
		"instructions": []any{
			map[string]any{"name": "h", "qubits": []any{-1.0}},
		},
	}
	assert.Error(t, Check(doc))
}

func TestCheckUnknownFieldsAllowed(t *testing.T) {
	// Forward compatibility: unknown fields within an instruction pass the
	// structural gate and are ignored by decode.
	doc := map[string]any{
		"instructions": []any{
			map[string]any{"name": "h", "qubits": []any{0.0}, "label": "first"},
		},
	}
	assert.NoError(t, Check(doc))
}
