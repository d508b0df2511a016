package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/qsimlab/opdec/internal/decode"
	"github.com/qsimlab/opdec/internal/schema"
)

// Program is a loaded, not-yet-decoded program document.
type Program struct {
	Name         string
	Source       string
	Instructions []decode.Value
}

// LoadError represents an error that occurred during program loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadProgram reads a program file (JSON, or YAML for .yaml/.yml
// extensions), checks it against the structural schema, and returns the raw
// instruction values ready for decoding.
//
// Two document shapes are accepted: a bare array of instructions, or an
// object {name?, instructions: [...]}. When the document carries no name,
// the file basename (without extension) is used.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("cannot read program file: %v", err)}
	}

	var raw any
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("cannot parse YAML: %v", err)}
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("cannot parse JSON: %v", err)}
		}
	}

	doc, err := normalizeDocument(raw)
	if err != nil {
		return nil, err
	}

	if err := schema.Check(doc); err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: err.Error()}
	}

	prog := &Program{Source: path}
	if name, ok := doc["name"].(string); ok {
		prog.Name = name
	} else {
		base := filepath.Base(path)
		prog.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	items := doc["instructions"].([]any)
	prog.Instructions = make([]decode.Value, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &LoadError{Code: ErrCodeShape, Message: fmt.Sprintf("instruction %d is not an object", i)}
		}
		prog.Instructions[i] = decode.Value(obj)
	}

	return prog, nil
}

// normalizeDocument accepts either document shape and always returns the
// object form.
func normalizeDocument(raw any) (map[string]any, error) {
	switch doc := raw.(type) {
	case []any:
		return map[string]any{"instructions": doc}, nil
	case map[string]any:
		if _, ok := doc["instructions"]; !ok {
			return nil, &LoadError{Code: ErrCodeShape, Message: `program object has no "instructions" field`}
		}
		if _, ok := doc["instructions"].([]any); !ok {
			return nil, &LoadError{Code: ErrCodeShape, Message: `"instructions" is not an array`}
		}
		return doc, nil
	default:
		return nil, &LoadError{Code: ErrCodeShape, Message: fmt.Sprintf("program document must be an array or object, got %T", raw)}
	}
}
