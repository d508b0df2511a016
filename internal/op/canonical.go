package op

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CacheKey returns a deterministic identity string for a decoded record.
//
// The observable engine caches per-operator results keyed by this string, so
// two records naming the same physical operator must produce byte-identical
// keys. Decoders guarantee the structural part (obs_pauli qubits arrive
// sorted with labels permuted to match); this function guarantees the
// textual part by NFC-normalising every string component.
//
// Key layout: kind|q0,q1,...|extra where extra depends on the kind:
//   - obs_pauli: the label strings joined with ";"
//   - obs_mat/obs_dmat/obs_vec: the register groups, each joined with ","
//     and groups joined with ":"
//   - everything else: no extra segment
func CacheKey(o *Op) string {
	var b strings.Builder
	b.WriteString(norm.NFC.String(o.Kind))
	b.WriteByte('|')
	writeInts(&b, o.Qubits, ',')

	switch o.Kind {
	case KindObsPauli:
		b.WriteByte('|')
		for i, s := range o.StringParams {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(norm.NFC.String(s))
		}
	case KindObsMat, KindObsDMat, KindObsVec:
		b.WriteByte('|')
		for i, group := range o.RegisterParams {
			if i > 0 {
				b.WriteByte(':')
			}
			writeInts(&b, group, ',')
		}
	}

	return b.String()
}

func writeInts(b *strings.Builder, vals []int, sep byte) {
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(strconv.Itoa(v))
	}
}
