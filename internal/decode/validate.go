package decode

// Field validators shared across decoders. Each returns nil or an
// *InvalidInstructionError naming the kind and field; decoders compose them
// rather than subclassing anything.

// requireNonEmpty fails when a required sequence field has no elements.
func requireNonEmpty(kind, field string, n int) error {
	if n == 0 {
		return invalid(kind, field, "must not be empty")
	}
	return nil
}

// requireUnique fails when seq contains a duplicate element anywhere in the
// list, not only in adjacent positions.
func requireUnique(kind, field string, seq []int) error {
	seen := make(map[int]struct{}, len(seq))
	for _, n := range seq {
		if _, dup := seen[n]; dup {
			return invalidf(kind, field, "index %d appears more than once", n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// requireMatchingLength enforces the "optional but must align" pattern: a
// field that is present (non-empty) must have exactly one entry per qubit.
func requireMatchingLength(kind, field string, n, qubits int) error {
	if n != 0 && n != qubits {
		return invalidf(kind, field, "length %d does not match qubit count %d", n, qubits)
	}
	return nil
}

// requirePartition fails unless the groups form an exact, non-overlapping
// partition of qubits: no index repeated within or across groups, none
// missing, none extra.
func requirePartition(kind, field string, qubits []int, groups [][]int) error {
	seen := make(map[int]struct{}, len(qubits))
	total := 0
	for _, group := range groups {
		for _, q := range group {
			if _, dup := seen[q]; dup {
				return invalidf(kind, field, "qubit %d appears in more than one block", q)
			}
			seen[q] = struct{}{}
			total++
		}
	}
	if total != len(qubits) {
		return invalidf(kind, field, "blocks cover %d qubits, instruction declares %d", total, len(qubits))
	}
	for _, q := range qubits {
		if _, ok := seen[q]; !ok {
			return invalidf(kind, field, "qubit %d is not covered by any block", q)
		}
	}
	return nil
}
