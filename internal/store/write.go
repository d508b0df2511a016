package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/qsimlab/opdec/internal/op"
)

// WriteProgram inserts a decoded program and its instruction rows in one
// transaction, returning the assigned program ID.
//
// Each instruction row carries the record serialised as JSON plus the
// columns the catalog queries on (kind, qubit count, cache key).
func (s *Store) WriteProgram(ctx context.Context, name, source string, ops []*op.Op) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("write program: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO programs (id, name, source, instruction_count)
		VALUES (?, ?, ?, ?)
	`, id, name, source, len(ops))
	if err != nil {
		return "", fmt.Errorf("write program: %w", err)
	}

	for idx, o := range ops {
		record, err := json.Marshal(o)
		if err != nil {
			return "", fmt.Errorf("write program: marshal instruction %d: %w", idx, err)
		}

		conditional := 0
		if o.IsConditional {
			conditional = 1
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO instructions (program_id, idx, kind, qubit_count, conditional, cache_key, record)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, idx, o.Kind, len(o.Qubits), conditional, op.CacheKey(o), string(record))
		if err != nil {
			return "", fmt.Errorf("write program: instruction %d: %w", idx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("write program: %w", err)
	}
	return id, nil
}
