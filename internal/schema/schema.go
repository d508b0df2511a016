// Package schema validates raw program documents against an embedded CUE
// schema before they reach the decoders.
//
// The check is structural only: instruction objects must carry a non-empty
// name, index lists must hold non-negative numbers, and the document must
// have an instructions list. Semantic rules (per-kind fields, length and
// partition constraints) live in the decode package, which stands alone as
// the library boundary; this gate exists so the CLI can report shape errors
// with field paths before decode runs.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// Error is one structural violation, tagged with the CUE field path.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrorList collects all violations found in one document.
type ErrorList []Error

// Error implements the error interface.
func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Check validates a raw program document (the result of unmarshalling JSON
// or YAML into map[string]any) against the embedded schema. Returns nil on
// success, or an ErrorList with every violation found.
func Check(doc any) error {
	ctx := cuecontext.New()

	s := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := s.Err(); err != nil {
		return fmt.Errorf("compile embedded schema: %w", err)
	}
	def := s.LookupPath(cue.ParsePath("#Program"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup #Program: %w", err)
	}

	v := def.Unify(ctx.Encode(doc))
	err := v.Validate(cue.Final(), cue.Concrete(true))
	if err == nil {
		return nil
	}

	var list ErrorList
	for _, e := range cueerrors.Errors(err) {
		list = append(list, Error{
			Field:   pathString(e.Path()),
			Message: e.Error(),
		})
	}
	return list
}

func pathString(path []string) string {
	return strings.Join(path, ".")
}
