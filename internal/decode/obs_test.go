package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsimlab/opdec/internal/op"
)

func TestDecodeProbs(t *testing.T) {
	o, err := Decode(Value{"name": "probs", "qubits": []any{1, 0}})
	require.NoError(t, err)
	assert.Equal(t, op.KindProbs, o.Kind)
	assert.Equal(t, []int{1, 0}, o.Qubits)
}

func TestDecodeProbsEmptyQubits(t *testing.T) {
	_, err := Decode(Value{"name": "probs", "qubits": []any{}})
	require.Error(t, err)
}

// =============================================================================
// obs_pauli
// =============================================================================

func TestDecodeObsPauliCoSort(t *testing.T) {
	// Character 0 is 'X' for qubit 2, character 1 is 'Z' for qubit 0. After
	// sorting the qubits, each character must still name the same physical
	// qubit.
	o, err := Decode(Value{
		"name":   "obs_pauli",
		"qubits": []any{2, 0},
		"params": []any{"XZ"},
		"coeffs": []any{[]any{1.0, 0.0}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, o.Qubits)
	assert.Equal(t, []string{"ZX"}, o.StringParams)
	assert.Equal(t, []op.Complex{op.NewComplex(1, 0)}, o.ComplexParams)
}

func TestDecodeObsPauliAlreadySorted(t *testing.T) {
	o, err := Decode(Value{
		"name":   "obs_pauli",
		"qubits": []any{0, 2},
		"params": []any{"ZX"},
		"coeffs": []any{[]any{1.0, 0.0}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, o.Qubits)
	assert.Equal(t, []string{"ZX"}, o.StringParams)
}

func TestDecodeObsPauliMultipleLabels(t *testing.T) {
	o, err := Decode(Value{
		"name":   "obs_pauli",
		"qubits": []any{3, 1, 2},
		"params": []any{"XYZ", "ZZX"},
		"coeffs": []any{0.5, []any{0.0, -1.0}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, o.Qubits)
	// Original order (3,1,2) carries labels (X,Y,Z): qubit 1 -> 'Y',
	// qubit 2 -> 'Z', qubit 3 -> 'X'.
	assert.Equal(t, []string{"YZX", "ZXZ"}, o.StringParams)
}

func TestDecodeObsPauliCanonicalisesEquivalentForms(t *testing.T) {
	a, err := Decode(Value{
		"name":   "obs_pauli",
		"qubits": []any{2, 0},
		"params": []any{"XZ"},
		"coeffs": []any{1.0},
	})
	require.NoError(t, err)
	b, err := Decode(Value{
		"name":   "obs_pauli",
		"qubits": []any{0, 2},
		"params": []any{"ZX"},
		"coeffs": []any{1.0},
	})
	require.NoError(t, err)
	assert.Equal(t, a, b, "two orderings of the same operator must decode identically")
}

func TestDecodeObsPauliLabelLengthMismatch(t *testing.T) {
	_, err := Decode(Value{
		"name":   "obs_pauli",
		"qubits": []any{0, 1},
		"params": []any{"XZZ"},
		"coeffs": []any{1.0},
	})
	require.Error(t, err)
	assert.True(t, IsInvalidInstruction(err))
}

func TestDecodeObsPauliCoeffCountMismatch(t *testing.T) {
	_, err := Decode(Value{
		"name":   "obs_pauli",
		"qubits": []any{0, 1},
		"params": []any{"XZ", "ZZ"},
		"coeffs": []any{1.0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coeffs")
}

func TestDecodeObsPauliMissingLabels(t *testing.T) {
	_, err := Decode(Value{"name": "obs_pauli", "qubits": []any{0}, "coeffs": []any{1.0}})
	require.Error(t, err)
}

func TestCosortPauli(t *testing.T) {
	qubits, labels := cosortPauli([]int{2, 0}, []string{"XZ"})
	assert.Equal(t, []int{0, 2}, qubits)
	assert.Equal(t, []string{"ZX"}, labels)
}

// =============================================================================
// Block observables
// =============================================================================

var blockIdentity = []any{
	[]any{[]any{1.0, 0.0}, []any{0.0, 0.0}},
	[]any{[]any{0.0, 0.0}, []any{1.0, 0.0}},
}

func TestDecodeObsMatExactPartition(t *testing.T) {
	o, err := Decode(Value{
		"name":       "obs_mat",
		"qubits":     []any{0, 1, 2, 3},
		"sub_qubits": []any{[]any{0, 1}, []any{2, 3}},
		"sub_params": []any{blockIdentity, blockIdentity},
	})
	require.NoError(t, err)
	assert.Equal(t, op.KindObsMat, o.Kind)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, o.RegisterParams)
	assert.Len(t, o.MatrixParams, 2)
}

func TestDecodeObsMatOverlappingBlocks(t *testing.T) {
	_, err := Decode(Value{
		"name":       "obs_mat",
		"qubits":     []any{0, 1, 2, 3},
		"sub_qubits": []any{[]any{0, 1}, []any{1, 2, 3}},
		"sub_params": []any{blockIdentity, blockIdentity},
	})
	require.Error(t, err)
	assert.True(t, IsInvalidInstruction(err))
}

func TestDecodeObsMatBlockCountMismatch(t *testing.T) {
	_, err := Decode(Value{
		"name":       "obs_mat",
		"qubits":     []any{0, 1},
		"sub_qubits": []any{[]any{0}, []any{1}},
		"sub_params": []any{blockIdentity},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sub_params")
}

func TestDecodeObsMatDuplicateQubits(t *testing.T) {
	_, err := Decode(Value{
		"name":       "obs_mat",
		"qubits":     []any{0, 0},
		"sub_qubits": []any{[]any{0}},
		"sub_params": []any{blockIdentity},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qubits")
}

func TestDecodeObsMatMissingSubQubits(t *testing.T) {
	_, err := Decode(Value{
		"name":       "obs_mat",
		"qubits":     []any{0},
		"sub_params": []any{blockIdentity},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sub_qubits")
}

func TestDecodeObsDMatVectors(t *testing.T) {
	o, err := Decode(Value{
		"name":       "obs_dmat",
		"qubits":     []any{0, 1},
		"sub_qubits": []any{[]any{0}, []any{1}},
		"sub_params": []any{
			[]any{[]any{1.0, 0.0}, []any{0.0, 0.0}},
			[]any{[]any{0.0, 0.0}, []any{1.0, 0.0}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, op.KindObsDMat, o.Kind)
	assert.Len(t, o.VectorParams, 2)
	assert.Equal(t, op.NewComplex(1, 0), o.VectorParams[0][0])
}

func TestDecodeObsVec(t *testing.T) {
	o, err := Decode(Value{
		"name":       "obs_vec",
		"qubits":     []any{0},
		"sub_qubits": []any{[]any{0}},
		"sub_params": []any{[]any{[]any{1.0, 0.0}, []any{0.0, 0.0}}},
	})
	require.NoError(t, err)
	assert.Equal(t, op.KindObsVec, o.Kind)
	assert.Len(t, o.VectorParams, 1)
}

func TestDecodeObsVecPartitionMismatch(t *testing.T) {
	_, err := Decode(Value{
		"name":       "obs_vec",
		"qubits":     []any{0, 1, 2},
		"sub_qubits": []any{[]any{0, 1}},
		"sub_params": []any{[]any{[]any{1.0, 0.0}}},
	})
	require.Error(t, err)
}
