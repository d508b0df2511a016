package op

// Op represents one decoded circuit instruction or observable descriptor.
//
// Kind is never empty after a successful decode. All slices are in wire
// order except where a decoder canonicalises them (obs_pauli sorts Qubits
// and permutes StringParams to match, see decode).
type Op struct {
	Kind string `json:"name"`

	// Conditional execution: when IsConditional is set, the engine gates
	// execution on the value held in ConditionalRegister.
	IsConditional       bool `json:"conditional,omitempty"`
	ConditionalRegister int  `json:"conditional_register,omitempty"`

	// Qubits the instruction acts on. Required non-empty for every kind
	// except snapshot.
	Qubits []int `json:"qubits,omitempty"`

	// Classical-bit targets (measure) and conditional-lookup locations.
	Memory    []int `json:"memory,omitempty"`
	Registers []int `json:"registers,omitempty"`

	// Parameter banks, used selectively per kind.
	StringParams   []string  `json:"string_params,omitempty"`
	RealParams     []float64 `json:"real_params,omitempty"`
	ComplexParams  []Complex `json:"complex_params,omitempty"`
	VectorParams   []Vector  `json:"vector_params,omitempty"`
	MatrixParams   []Matrix  `json:"matrix_params,omitempty"`
	RegisterParams [][]int   `json:"register_params,omitempty"`
}

// Known instruction kinds. Any name outside this set decodes as a generic
// parametrized gate.
const (
	KindMeasure  = "measure"
	KindReset    = "reset"
	KindSnapshot = "snapshot"
	KindMat      = "mat"
	KindDMat     = "dmat"
	KindKraus    = "kraus"
	KindProbs    = "probs"
	KindObsPauli = "obs_pauli"
	KindObsMat   = "obs_mat"
	KindObsDMat  = "obs_dmat"
	KindObsVec   = "obs_vec"
)

// IsObservable reports whether kind names a statistical-observable
// instruction.
func IsObservable(kind string) bool {
	switch kind {
	case KindProbs, KindObsPauli, KindObsMat, KindObsDMat, KindObsVec:
		return true
	}
	return false
}
