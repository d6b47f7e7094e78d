package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/sqlite-knn/classifier"
	"github.com/viant/sqlite-knn/vector"
)

// Store keeps named data sets of string-labeled examples in SQLite. Features
// are stored as BLOBs produced by vector.EncodeFeatures, so they can be
// compared in SQL with the knn_l2 function registered by package engine.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store and ensures the examples schema exists.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("dataset: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("dataset: ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save replaces the named data set with examples.
func (s *Store) Save(ctx context.Context, name string, examples []classifier.Example[string]) error {
	return s.write(ctx, name, examples, true)
}

// Append adds examples after the existing ones of the named data set.
func (s *Store) Append(ctx context.Context, name string, examples []classifier.Example[string]) error {
	return s.write(ctx, name, examples, false)
}

func (s *Store) write(ctx context.Context, name string, examples []classifier.Example[string], replace bool) error {
	if name == "" {
		return fmt.Errorf("dataset: empty data set name")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	next := int64(0)
	if replace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+DefaultTable+` WHERE dataset = ?`, name); err != nil {
			return fmt.Errorf("dataset: clear %s: %w", name, err)
		}
	} else {
		row := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq) + 1, 0) FROM `+DefaultTable+` WHERE dataset = ?`, name)
		if err := row.Scan(&next); err != nil {
			return fmt.Errorf("dataset: next seq of %s: %w", name, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+DefaultTable+`(dataset, seq, label, features) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range examples {
		if _, err := stmt.ExecContext(ctx, name, next+int64(i), e.Label, vector.EncodeFeatures(e.Features)); err != nil {
			return fmt.Errorf("dataset: insert %s[%d]: %w", name, next+int64(i), err)
		}
	}
	return tx.Commit()
}

// Load returns the examples of the named data set in insertion order. An
// unknown data set yields no examples.
func (s *Store) Load(ctx context.Context, name string) ([]classifier.Example[string], error) {
	rows, err := s.db.QueryContext(ctx, `SELECT seq, label, features FROM `+DefaultTable+` WHERE dataset = ? ORDER BY seq`, name)
	if err != nil {
		return nil, fmt.Errorf("dataset: load %s: %w", name, err)
	}
	defer rows.Close()

	var out []classifier.Example[string]
	for rows.Next() {
		var seq int64
		var e classifier.Example[string]
		var blob []byte
		if err := rows.Scan(&seq, &e.Label, &blob); err != nil {
			return nil, err
		}
		if e.Features, err = vector.DecodeFeatures(blob); err != nil {
			return nil, fmt.Errorf("dataset: %s[%d]: %w", name, seq, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of examples in the named data set.
func (s *Store) Count(ctx context.Context, name string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+DefaultTable+` WHERE dataset = ?`, name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("dataset: count %s: %w", name, err)
	}
	return n, nil
}
