package dataset

import (
	"context"
	"database/sql"
)

// DefaultTable stores examples of every named data set, ordered by seq.
const DefaultTable = "knn_examples"

const examplesSchema = `
CREATE TABLE IF NOT EXISTS ` + DefaultTable + ` (
    dataset  TEXT NOT NULL,
    seq      INTEGER NOT NULL,
    label    TEXT NOT NULL,
    features BLOB,
    PRIMARY KEY(dataset, seq)
);
`

// EnsureSchema creates the examples table if it does not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, examplesSchema)
	return err
}
