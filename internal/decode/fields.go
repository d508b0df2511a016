package decode

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/qsimlab/opdec/internal/op"
)

// Value is one loosely-typed instruction description: an object with named
// fields as produced by a JSON or YAML unmarshal into map[string]any.
//
// Every getter follows the same contract: (zero, false, nil) when the field
// is absent, (value, true, nil) when present and well-formed, and a non-nil
// error when present but malformed. Absent optional fields are never errors;
// unknown fields are ignored entirely.
type Value map[string]any

// String returns a string field.
func (v Value) String(key string) (string, bool, error) {
	raw, ok := v[key]
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", true, fmt.Errorf("expected string, got %T", raw)
	}
	return s, true, nil
}

// Strings returns a list-of-strings field.
func (v Value) Strings(key string) ([]string, bool, error) {
	items, ok, err := v.list(key)
	if !ok || err != nil {
		return nil, ok, err
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, true, fmt.Errorf("element %d: expected string, got %T", i, item)
		}
		out[i] = s
	}
	return out, true, nil
}

// Int returns an integer field. JSON numbers and YAML integers are both
// accepted; non-integral values are malformed.
func (v Value) Int(key string) (int, bool, error) {
	raw, ok := v[key]
	if !ok {
		return 0, false, nil
	}
	n, ok := asInt(raw)
	if !ok {
		return 0, true, fmt.Errorf("expected integer, got %v", raw)
	}
	return n, true, nil
}

// Indices returns a list of non-negative integers (qubit or classical-bit
// indices).
func (v Value) Indices(key string) ([]int, bool, error) {
	items, ok, err := v.list(key)
	if !ok || err != nil {
		return nil, ok, err
	}
	out := make([]int, len(items))
	for i, item := range items {
		n, ok := asInt(item)
		if !ok {
			return nil, true, fmt.Errorf("element %d: expected integer, got %v", i, item)
		}
		if n < 0 {
			return nil, true, fmt.Errorf("element %d: index must be non-negative, got %d", i, n)
		}
		out[i] = n
	}
	return out, true, nil
}

// IndexGroups returns a list of index lists (the register-group parameter
// shape used by block observables).
func (v Value) IndexGroups(key string) ([][]int, bool, error) {
	items, ok, err := v.list(key)
	if !ok || err != nil {
		return nil, ok, err
	}
	out := make([][]int, len(items))
	for i, item := range items {
		elems, ok := item.([]any)
		if !ok {
			return nil, true, fmt.Errorf("element %d: expected array of integers, got %T", i, item)
		}
		group := make([]int, len(elems))
		for j, elem := range elems {
			n, ok := asInt(elem)
			if !ok {
				return nil, true, fmt.Errorf("element %d[%d]: expected integer, got %v", i, j, elem)
			}
			if n < 0 {
				return nil, true, fmt.Errorf("element %d[%d]: index must be non-negative, got %d", i, j, n)
			}
			group[j] = n
		}
		out[i] = group
	}
	return out, true, nil
}

// Floats returns a list of real numbers.
func (v Value) Floats(key string) ([]float64, bool, error) {
	items, ok, err := v.list(key)
	if !ok || err != nil {
		return nil, ok, err
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := asFloat(item)
		if !ok {
			return nil, true, fmt.Errorf("element %d: expected number, got %T", i, item)
		}
		out[i] = f
	}
	return out, true, nil
}

// Complexes returns a list of complex scalars. Each element is a [re, im]
// pair; a bare number is accepted as a real value.
func (v Value) Complexes(key string) ([]op.Complex, bool, error) {
	items, ok, err := v.list(key)
	if !ok || err != nil {
		return nil, ok, err
	}
	out := make([]op.Complex, len(items))
	for i, item := range items {
		c, ok := asComplex(item)
		if !ok {
			return nil, true, fmt.Errorf("element %d: expected [re, im] pair or number, got %v", i, item)
		}
		out[i] = c
	}
	return out, true, nil
}

// Vectors returns a list of complex vectors.
func (v Value) Vectors(key string) ([]op.Vector, bool, error) {
	items, ok, err := v.list(key)
	if !ok || err != nil {
		return nil, ok, err
	}
	out := make([]op.Vector, len(items))
	for i, item := range items {
		vec, ok := asVector(item)
		if !ok {
			return nil, true, fmt.Errorf("element %d: expected array of [re, im] pairs", i)
		}
		out[i] = vec
	}
	return out, true, nil
}

// Matrix returns a single row-major complex matrix.
func (v Value) Matrix(key string) (op.Matrix, bool, error) {
	raw, ok := v[key]
	if !ok {
		return nil, false, nil
	}
	m, ok := asMatrix(raw)
	if !ok {
		return nil, true, fmt.Errorf("expected matrix (array of rows of [re, im] pairs)")
	}
	return m, true, nil
}

// Matrices returns a list of row-major complex matrices.
func (v Value) Matrices(key string) ([]op.Matrix, bool, error) {
	items, ok, err := v.list(key)
	if !ok || err != nil {
		return nil, ok, err
	}
	out := make([]op.Matrix, len(items))
	for i, item := range items {
		m, ok := asMatrix(item)
		if !ok {
			return nil, true, fmt.Errorf("element %d: expected matrix (array of rows of [re, im] pairs)", i)
		}
		out[i] = m
	}
	return out, true, nil
}

func (v Value) list(key string) ([]any, bool, error) {
	raw, ok := v[key]
	if !ok {
		return nil, false, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, true, fmt.Errorf("expected array, got %T", raw)
	}
	return items, true, nil
}

// asInt coerces the numeric representations the JSON and YAML unmarshalers
// produce. Non-integral floats are rejected.
func asInt(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		return 0, false
	}
	return 0, false
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
		return 0, false
	}
	return 0, false
}

func asComplex(raw any) (op.Complex, bool) {
	if f, ok := asFloat(raw); ok {
		return op.NewComplex(f, 0), true
	}
	pair, ok := raw.([]any)
	if !ok || len(pair) != 2 {
		return op.Complex{}, false
	}
	re, ok := asFloat(pair[0])
	if !ok {
		return op.Complex{}, false
	}
	im, ok := asFloat(pair[1])
	if !ok {
		return op.Complex{}, false
	}
	return op.NewComplex(re, im), true
}

func asVector(raw any) (op.Vector, bool) {
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	vec := make(op.Vector, len(items))
	for i, item := range items {
		c, ok := asComplex(item)
		if !ok {
			return nil, false
		}
		vec[i] = c
	}
	return vec, true
}

func asMatrix(raw any) (op.Matrix, bool) {
	rows, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	m := make(op.Matrix, len(rows))
	for i, row := range rows {
		vec, ok := asVector(row)
		if !ok {
			return nil, false
		}
		m[i] = vec
	}
	return m, true
}
