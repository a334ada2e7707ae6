package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// schema defines the two tables the backend owns. Both statements are
// idempotent so InitSchema can run unconditionally at every startup.
const schema = `
CREATE TABLE IF NOT EXISTS enquiries (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    email       TEXT NOT NULL,
    phone       TEXT NOT NULL DEFAULT '',
    message     TEXT NOT NULL,
    source_page TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    price       INTEGER NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image       TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// InitSchema ensures both tables exist. It is called once at process
// startup and its error is fatal to the caller.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
