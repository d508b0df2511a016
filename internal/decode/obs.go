package decode

import (
	"slices"

	"github.com/qsimlab/opdec/internal/op"
)

func decodeProbs(v Value) (*op.Op, error) {
	qubits, err := requiredQubits(op.KindProbs, v)
	if err != nil {
		return nil, err
	}
	return &op.Op{Kind: op.KindProbs, Qubits: qubits}, nil
}

func decodeObsPauli(v Value) (*op.Op, error) {
	qubits, err := requiredQubits(op.KindObsPauli, v)
	if err != nil {
		return nil, err
	}

	labels, _, err := v.Strings("params")
	if err != nil {
		return nil, invalid(op.KindObsPauli, "params", err.Error())
	}
	if err := requireNonEmpty(op.KindObsPauli, "params", len(labels)); err != nil {
		return nil, err
	}
	for _, s := range labels {
		if len(s) != len(qubits) {
			return nil, invalidf(op.KindObsPauli, "params",
				"label %q has %d characters for %d qubits", s, len(s), len(qubits))
		}
	}

	coeffs, _, err := v.Complexes("coeffs")
	if err != nil {
		return nil, invalid(op.KindObsPauli, "coeffs", err.Error())
	}
	if len(coeffs) != len(labels) {
		return nil, invalidf(op.KindObsPauli, "coeffs",
			"%d coefficients for %d label strings", len(coeffs), len(labels))
	}

	qubits, labels = cosortPauli(qubits, labels)

	return &op.Op{Kind: op.KindObsPauli, Qubits: qubits, StringParams: labels, ComplexParams: coeffs}, nil
}

// cosortPauli sorts qubits ascending and permutes every label string so that
// character i still names the same physical qubit it named before sorting.
// The observable engine caches results by qubit-sorted label string, so two
// descriptions of the same operator in different qubit orders must
// canonicalise identically. The permutation is computed by explicit position
// lookup; qubits and labels are not co-sortable by value.
func cosortPauli(qubits []int, labels []string) ([]int, []string) {
	pos := make(map[int]int, len(qubits))
	for i, q := range qubits {
		pos[q] = i
	}
	sorted := slices.Clone(qubits)
	slices.Sort(sorted)

	permuted := make([]string, len(labels))
	for i, s := range labels {
		b := make([]byte, len(sorted))
		for j, q := range sorted {
			b[j] = s[pos[q]]
		}
		permuted[i] = string(b)
	}
	return sorted, permuted
}

func decodeObsMat(v Value) (*op.Op, error) {
	o, err := decodeBlockHeader(op.KindObsMat, v)
	if err != nil {
		return nil, err
	}

	blocks, _, err := v.Matrices("sub_params")
	if err != nil {
		return nil, invalid(op.KindObsMat, "sub_params", err.Error())
	}
	if err := requireBlockCount(op.KindObsMat, len(blocks), len(o.RegisterParams)); err != nil {
		return nil, err
	}

	o.MatrixParams = blocks
	return o, nil
}

func decodeObsDMat(v Value) (*op.Op, error) {
	o, err := decodeBlockHeader(op.KindObsDMat, v)
	if err != nil {
		return nil, err
	}

	blocks, _, err := v.Vectors("sub_params")
	if err != nil {
		return nil, invalid(op.KindObsDMat, "sub_params", err.Error())
	}
	if err := requireBlockCount(op.KindObsDMat, len(blocks), len(o.RegisterParams)); err != nil {
		return nil, err
	}

	o.VectorParams = blocks
	return o, nil
}

func decodeObsVec(v Value) (*op.Op, error) {
	o, err := decodeBlockHeader(op.KindObsVec, v)
	if err != nil {
		return nil, err
	}

	blocks, _, err := v.Vectors("sub_params")
	if err != nil {
		return nil, invalid(op.KindObsVec, "sub_params", err.Error())
	}
	if err := requireBlockCount(op.KindObsVec, len(blocks), len(o.RegisterParams)); err != nil {
		return nil, err
	}

	o.VectorParams = blocks
	return o, nil
}

// decodeBlockHeader extracts and validates the fields common to the
// block-structured observables: unique non-empty qubits and register groups
// that partition them exactly.
func decodeBlockHeader(kind string, v Value) (*op.Op, error) {
	qubits, err := requiredQubits(kind, v)
	if err != nil {
		return nil, err
	}
	if err := requireUnique(kind, "qubits", qubits); err != nil {
		return nil, err
	}

	groups, ok, err := v.IndexGroups("sub_qubits")
	if err != nil {
		return nil, invalid(kind, "sub_qubits", err.Error())
	}
	if !ok {
		return nil, invalid(kind, "sub_qubits", "missing register groups")
	}
	if err := requirePartition(kind, "sub_qubits", qubits, groups); err != nil {
		return nil, err
	}

	return &op.Op{Kind: kind, Qubits: qubits, RegisterParams: groups}, nil
}

func requireBlockCount(kind string, blocks, groups int) error {
	if blocks != groups {
		return invalidf(kind, "sub_params", "%d data blocks for %d register groups", blocks, groups)
	}
	return nil
}
