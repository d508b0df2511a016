package decode

import (
	"github.com/qsimlab/opdec/internal/op"
)

type decodeFunc func(Value) (*op.Op, error)

// decoders maps recognised name tokens to their decoders. Names outside
// this table decode as generic parametrized gates; that fallback is
// deliberate, so custom gate names flow through without registration.
var decoders = map[string]decodeFunc{
	op.KindMeasure:  decodeMeasure,
	op.KindReset:    decodeReset,
	op.KindSnapshot: decodeSnapshot,
	op.KindMat:      decodeMat,
	op.KindDMat:     decodeDMat,
	op.KindKraus:    decodeKraus,
	op.KindProbs:    decodeProbs,
	op.KindObsPauli: decodeObsPauli,
	op.KindObsMat:   decodeObsMat,
	op.KindObsDMat:  decodeObsDMat,
	op.KindObsVec:   decodeObsVec,
}

// Decode converts one structured instruction description into a validated
// record. It reads the name token, routes to the matching decoder (falling
// back to the generic gate decoder for unrecognised names), then applies the
// optional conditional-execution field.
func Decode(v Value) (*op.Op, error) {
	name, _, err := v.String("name")
	if err != nil {
		return nil, invalid("", "name", err.Error())
	}
	if name == "" {
		return nil, invalid("", "name", "missing or empty")
	}

	fn, ok := decoders[name]
	if !ok {
		fn = decodeGate
	}
	o, err := fn(v)
	if err != nil {
		return nil, err
	}

	if err := applyConditional(v, o); err != nil {
		return nil, err
	}
	return o, nil
}

// DecodeObservable decodes an observable descriptor. Unlike Decode it
// rejects any name that is not an observable kind instead of falling back
// to the generic gate decoder.
func DecodeObservable(v Value) (*op.Op, error) {
	name, _, err := v.String("name")
	if err != nil {
		return nil, invalid("", "name", err.Error())
	}
	if name == "" {
		return nil, invalid("", "name", "missing or empty")
	}
	if !op.IsObservable(name) {
		return nil, invalid(name, "name", "not an observable instruction")
	}
	return Decode(v)
}

// applyConditional reads the optional "conditional" field: an integer
// register index that gates execution on a classical value. It applies to
// any kind.
func applyConditional(v Value, o *op.Op) error {
	reg, ok, err := v.Int("conditional")
	if err != nil {
		return invalid(o.Kind, "conditional", err.Error())
	}
	if !ok {
		return nil
	}
	if reg < 0 {
		return invalidf(o.Kind, "conditional", "register index must be non-negative, got %d", reg)
	}
	o.IsConditional = true
	o.ConditionalRegister = reg
	return nil
}
