package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hivemind/internal/logger"
)

// ErrAlreadyExists is returned when an insert hits a unique constraint.
var ErrAlreadyExists = errors.New("record already exists")

// uniqueViolation is the SQLSTATE code for unique_violation.
const uniqueViolation = "23505"

// Schema creates the tables used by the service. Every statement is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	user_name VARCHAR(50) PRIMARY KEY,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS ideas (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	body TEXT NOT NULL,
	up_votes BIGINT NOT NULL DEFAULT 0 CHECK (up_votes >= 0),
	down_votes BIGINT NOT NULL DEFAULT 0 CHECK (down_votes >= 0),
	user_name VARCHAR(50) NOT NULL REFERENCES users(user_name) ON DELETE CASCADE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_ideas_created_at ON ideas(created_at);

CREATE TABLE IF NOT EXISTS votes (
	id BIGSERIAL PRIMARY KEY,
	direction SMALLINT NOT NULL CHECK (direction IN (1, -1)),
	user_name VARCHAR(50) NOT NULL REFERENCES users(user_name) ON DELETE CASCADE,
	idea_id BIGINT NOT NULL REFERENCES ideas(id) ON DELETE CASCADE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	UNIQUE (direction, user_name, idea_id),
	UNIQUE (user_name, idea_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_created_at ON votes(created_at);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	body TEXT NOT NULL,
	user_name VARCHAR(50) NOT NULL REFERENCES users(user_name) ON DELETE CASCADE,
	idea_id BIGINT NOT NULL REFERENCES ideas(id) ON DELETE CASCADE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_comments_idea_id ON comments(idea_id);
`

// Migrate applies Schema to db.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	logger.Log.Infow("schema migration applied", "error", err)
	return err
}

// TxGetter returns the transaction carried by ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the transaction from ctx when there is one, otherwise db.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs query, args, result and error on a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// mapError converts driver errors into repository sentinels.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrAlreadyExists
	}
	return err
}
