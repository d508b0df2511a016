package decode

import (
	"github.com/qsimlab/opdec/internal/op"
)

// decodeGate handles any named gate, including custom names the dispatcher
// does not recognise. Real parameters are optional with no length
// constraint.
func decodeGate(v Value) (*op.Op, error) {
	name, _, err := v.String("name")
	if err != nil {
		return nil, invalid("", "name", err.Error())
	}
	if name == "" {
		return nil, invalid("", "name", "missing or empty")
	}

	qubits, err := requiredQubits(name, v)
	if err != nil {
		return nil, err
	}

	params, _, err := v.Floats("params")
	if err != nil {
		return nil, invalid(name, "params", err.Error())
	}

	return &op.Op{Kind: name, Qubits: qubits, RealParams: params}, nil
}

func decodeMeasure(v Value) (*op.Op, error) {
	qubits, err := requiredQubits(op.KindMeasure, v)
	if err != nil {
		return nil, err
	}

	memory, _, err := v.Indices("memory")
	if err != nil {
		return nil, invalid(op.KindMeasure, "memory", err.Error())
	}
	if err := requireMatchingLength(op.KindMeasure, "memory", len(memory), len(qubits)); err != nil {
		return nil, err
	}

	registers, _, err := v.Indices("register")
	if err != nil {
		return nil, invalid(op.KindMeasure, "register", err.Error())
	}
	if err := requireMatchingLength(op.KindMeasure, "register", len(registers), len(qubits)); err != nil {
		return nil, err
	}

	return &op.Op{Kind: op.KindMeasure, Qubits: qubits, Memory: memory, Registers: registers}, nil
}

func decodeReset(v Value) (*op.Op, error) {
	qubits, err := requiredQubits(op.KindReset, v)
	if err != nil {
		return nil, err
	}

	params, _, err := v.Floats("params")
	if err != nil {
		return nil, invalid(op.KindReset, "params", err.Error())
	}
	if len(params) == 0 {
		// Absent reset values default to the all-zero state.
		params = make([]float64, len(qubits))
	}
	if err := requireMatchingLength(op.KindReset, "params", len(params), len(qubits)); err != nil {
		return nil, err
	}

	return &op.Op{Kind: op.KindReset, Qubits: qubits, RealParams: params}, nil
}

func decodeSnapshot(v Value) (*op.Op, error) {
	labels, _, err := v.Strings("params")
	if err != nil {
		return nil, invalid(op.KindSnapshot, "params", err.Error())
	}
	if len(labels) == 1 {
		// A lone label gets the default snapshot type appended.
		labels = append(labels, "default")
	}

	return &op.Op{Kind: op.KindSnapshot, StringParams: labels}, nil
}

// requiredQubits extracts the qubits field, which must be present and
// non-empty for every kind that calls this.
func requiredQubits(kind string, v Value) ([]int, error) {
	qubits, _, err := v.Indices("qubits")
	if err != nil {
		return nil, invalid(kind, "qubits", err.Error())
	}
	if err := requireNonEmpty(kind, "qubits", len(qubits)); err != nil {
		return nil, err
	}
	return qubits, nil
}
