package decode

import (
	"github.com/qsimlab/opdec/internal/op"
)

// Matrix-valued instructions. None of these validate matrix or vector
// dimensions against the qubit count; that check belongs to the consuming
// engine.

func decodeMat(v Value) (*op.Op, error) {
	qubits, err := requiredQubits(op.KindMat, v)
	if err != nil {
		return nil, err
	}

	m, ok, err := v.Matrix("params")
	if err != nil {
		return nil, invalid(op.KindMat, "params", err.Error())
	}
	if !ok {
		return nil, invalid(op.KindMat, "params", "missing matrix")
	}

	return &op.Op{Kind: op.KindMat, Qubits: qubits, MatrixParams: []op.Matrix{m}}, nil
}

func decodeDMat(v Value) (*op.Op, error) {
	qubits, err := requiredQubits(op.KindDMat, v)
	if err != nil {
		return nil, err
	}

	diag, ok, err := v.Complexes("params")
	if err != nil {
		return nil, invalid(op.KindDMat, "params", err.Error())
	}
	if !ok {
		return nil, invalid(op.KindDMat, "params", "missing diagonal")
	}

	return &op.Op{Kind: op.KindDMat, Qubits: qubits, ComplexParams: diag}, nil
}

func decodeKraus(v Value) (*op.Op, error) {
	qubits, err := requiredQubits(op.KindKraus, v)
	if err != nil {
		return nil, err
	}

	ms, ok, err := v.Matrices("params")
	if err != nil {
		return nil, invalid(op.KindKraus, "params", err.Error())
	}
	if !ok {
		return nil, invalid(op.KindKraus, "params", "missing matrices")
	}

	return &op.Op{Kind: op.KindKraus, Qubits: qubits, MatrixParams: ms}, nil
}
