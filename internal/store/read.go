package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/qsimlab/opdec/internal/op"
)

// ErrNotFound is returned when a program ID does not exist in the catalog.
var ErrNotFound = errors.New("program not found")

// Program is one catalogued decode result.
type Program struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Source           string `json:"source"`
	InstructionCount int    `json:"instruction_count"`
}

// Instruction is one catalogued instruction row.
type Instruction struct {
	Index      int    `json:"index"`
	Kind       string `json:"kind"`
	QubitCount int    `json:"qubit_count"`
	CacheKey   string `json:"cache_key"`
	Record     *op.Op `json:"record"`
}

// ListPrograms returns all catalogued programs.
// Results are ordered deterministically: ORDER BY name ASC, id ASC.
//
// Returns an empty slice (not nil) when the catalog is empty.
func (s *Store) ListPrograms(ctx context.Context) ([]Program, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, source, instruction_count
		FROM programs
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	programs := []Program{}
	for rows.Next() {
		var p Program
		if err := rows.Scan(&p.ID, &p.Name, &p.Source, &p.InstructionCount); err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate programs: %w", err)
	}

	return programs, nil
}

// GetProgram returns one program and its instructions, ordered by index.
func (s *Store) GetProgram(ctx context.Context, id string) (Program, []Instruction, error) {
	var p Program
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source, instruction_count
		FROM programs
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Source, &p.InstructionCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Program{}, nil, ErrNotFound
	}
	if err != nil {
		return Program{}, nil, fmt.Errorf("get program: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, kind, qubit_count, cache_key, record
		FROM instructions
		WHERE program_id = ?
		ORDER BY idx ASC
	`, id)
	if err != nil {
		return Program{}, nil, fmt.Errorf("get program instructions: %w", err)
	}
	defer rows.Close()

	instructions := []Instruction{}
	for rows.Next() {
		var inst Instruction
		var record string
		if err := rows.Scan(&inst.Index, &inst.Kind, &inst.QubitCount, &inst.CacheKey, &record); err != nil {
			return Program{}, nil, fmt.Errorf("scan instruction: %w", err)
		}
		inst.Record = &op.Op{}
		if err := json.Unmarshal([]byte(record), inst.Record); err != nil {
			return Program{}, nil, fmt.Errorf("unmarshal instruction %d: %w", inst.Index, err)
		}
		instructions = append(instructions, inst)
	}
	if err := rows.Err(); err != nil {
		return Program{}, nil, fmt.Errorf("iterate instructions: %w", err)
	}

	return p, instructions, nil
}
