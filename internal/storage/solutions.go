package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/pocketcube"
)

// SolutionRecord is a cached solver result.
type SolutionRecord struct {
	SolutionID string
	State      pocketcube.State
	Moves      []pocketcube.Move
	CreatedAt  time.Time
}

// SolutionRepository provides CRUD operations for cached solutions.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Save stores moves as the solution of state and returns the row ID. An
// existing row for state is overwritten and keeps its ID.
func (r *SolutionRepository) Save(state pocketcube.State, moves []pocketcube.Move) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.QueryRow(`
		INSERT INTO solutions (solution_id, state, moves, move_count, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(state) DO UPDATE SET
			moves = excluded.moves,
			move_count = excluded.move_count,
			created_at = excluded.created_at
		RETURNING solution_id
	`, id, string(state), pocketcube.FormatMoves(moves), len(moves), createdAt.Format(time.RFC3339)).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to save solution: %w", err)
	}

	return id, nil
}

// Get retrieves a solution by state. It returns nil if none is stored.
func (r *SolutionRepository) Get(state pocketcube.State) (*SolutionRecord, error) {
	row := r.db.QueryRow(`
		SELECT solution_id, state, moves, created_at
		FROM solutions
		WHERE state = ?
	`, string(state))

	rec, err := scanSolution(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}
	return rec, nil
}

// Lookup returns the cached moves for state.
func (r *SolutionRepository) Lookup(state pocketcube.State) ([]pocketcube.Move, bool, error) {
	rec, err := r.Get(state)
	if err != nil || rec == nil {
		return nil, false, err
	}
	return rec.Moves, true, nil
}

// Store saves moves as the solution of state.
func (r *SolutionRepository) Store(state pocketcube.State, moves []pocketcube.Move) error {
	_, err := r.Save(state, moves)
	return err
}

// List returns the most recently stored solutions, newest first.
func (r *SolutionRepository) List(limit int) ([]SolutionRecord, error) {
	rows, err := r.db.Query(`
		SELECT solution_id, state, moves, created_at
		FROM solutions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	var records []SolutionRecord
	for rows.Next() {
		rec, err := scanSolution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

// Delete removes a solution by ID.
func (r *SolutionRepository) Delete(solutionID string) error {
	_, err := r.db.Exec("DELETE FROM solutions WHERE solution_id = ?", solutionID)
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}
	return nil
}

// Clear removes every solution and returns how many were removed.
func (r *SolutionRepository) Clear() (int, error) {
	var removed int
	err := r.db.Transaction(func(tx *sql.Tx) error {
		if err := tx.QueryRow("SELECT COUNT(*) FROM solutions").Scan(&removed); err != nil {
			return fmt.Errorf("failed to count solutions: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM solutions"); err != nil {
			return fmt.Errorf("failed to clear solutions: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Count returns the number of cached solutions.
func (r *SolutionRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solutions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count solutions: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolution(s scanner) (*SolutionRecord, error) {
	var rec SolutionRecord
	var state, moves, createdAt string
	if err := s.Scan(&rec.SolutionID, &state, &moves, &createdAt); err != nil {
		return nil, err
	}

	parsed, err := pocketcube.ParseMoves(moves)
	if err != nil {
		return nil, fmt.Errorf("solution %s: %w", rec.SolutionID, err)
	}
	rec.State = pocketcube.State(state)
	rec.Moves = parsed
	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &rec, nil
}
