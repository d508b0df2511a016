package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsimlab/opdec/internal/op"
)

func TestDecodeGateBasic(t *testing.T) {
	o, err := Decode(Value{"name": "u2", "qubits": []any{0.0}, "params": []any{0.5, 1.5}})
	require.NoError(t, err)
	assert.Equal(t, "u2", o.Kind)
	assert.Equal(t, []int{0}, o.Qubits)
	assert.Equal(t, []float64{0.5, 1.5}, o.RealParams)
}

func TestDecodeGateNoParams(t *testing.T) {
	o, err := Decode(Value{"name": "h", "qubits": []any{0}})
	require.NoError(t, err)
	assert.Empty(t, o.RealParams)
}

func TestDecodeGateMissingQubits(t *testing.T) {
	_, err := Decode(Value{"name": "h"})
	require.Error(t, err)
	assert.True(t, IsInvalidInstruction(err))
}

func TestDecodeGateEmptyQubits(t *testing.T) {
	_, err := Decode(Value{"name": "h", "qubits": []any{}})
	require.Error(t, err)
}

func TestDecodeMeasureWithMemoryAndRegister(t *testing.T) {
	o, err := Decode(Value{
		"name":     "measure",
		"qubits":   []any{0, 1},
		"memory":   []any{0, 1},
		"register": []any{2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, op.KindMeasure, o.Kind)
	assert.Equal(t, []int{0, 1}, o.Memory)
	assert.Equal(t, []int{2, 3}, o.Registers)
}

func TestDecodeMeasureNoTargets(t *testing.T) {
	o, err := Decode(Value{"name": "measure", "qubits": []any{0, 1}})
	require.NoError(t, err)
	assert.Empty(t, o.Memory)
	assert.Empty(t, o.Registers)
}

func TestDecodeMeasureMemoryLengthMismatch(t *testing.T) {
	_, err := Decode(Value{"name": "measure", "qubits": []any{0, 1}, "memory": []any{0}})
	require.Error(t, err)
	assert.True(t, IsInvalidInstruction(err))
	assert.Contains(t, err.Error(), "memory")
}

func TestDecodeMeasureRegisterLengthMismatch(t *testing.T) {
	_, err := Decode(Value{"name": "measure", "qubits": []any{0, 1}, "register": []any{0, 1, 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register")
}

func TestDecodeResetDefaultsToZero(t *testing.T) {
	o, err := Decode(Value{"name": "reset", "qubits": []any{0, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, o.RealParams)
}

func TestDecodeResetExplicitParams(t *testing.T) {
	o, err := Decode(Value{"name": "reset", "qubits": []any{0, 1}, "params": []any{1.0, 0.0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, o.RealParams)
}

func TestDecodeResetLengthMismatch(t *testing.T) {
	_, err := Decode(Value{"name": "reset", "qubits": []any{0, 1, 2}, "params": []any{1.0, 0.0}})
	require.Error(t, err)
	assert.True(t, IsInvalidInstruction(err))
}

func TestDecodeSnapshotSingleLabelGetsDefault(t *testing.T) {
	o, err := Decode(Value{"name": "snapshot", "params": []any{"probabilities"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"probabilities", "default"}, o.StringParams)
}

func TestDecodeSnapshotTwoLabelsUnchanged(t *testing.T) {
	o, err := Decode(Value{"name": "snapshot", "params": []any{"probabilities", "label"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"probabilities", "label"}, o.StringParams)
}

func TestDecodeSnapshotNoLabels(t *testing.T) {
	// Snapshot is the one kind with no qubit targeting at all.
	o, err := Decode(Value{"name": "snapshot"})
	require.NoError(t, err)
	assert.Equal(t, op.KindSnapshot, o.Kind)
	assert.Empty(t, o.StringParams)
	assert.Empty(t, o.Qubits)
}
