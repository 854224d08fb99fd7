package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hivemind/internal/models"
)

// ErrInvalidDirection is returned when a vote is neither up nor down.
var ErrInvalidDirection = errors.New("vote direction must be 1 or -1")

const voteColumns = `id, direction, user_name, idea_id, created_at`

// VoteRepository is the vote ledger: one row per standing vote.
type VoteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewVoteRepository(db *sqlx.DB, txGetter TxGetter) *VoteRepository {
	return &VoteRepository{db: db, txGetter: txGetter}
}

// GetByUserAndIdea returns the standing vote of username on ideaID, or nil.
func (r *VoteRepository) GetByUserAndIdea(ctx context.Context, username string, ideaID int64) (*models.VoteDB, error) {
	query := `SELECT ` + voteColumns + ` FROM votes WHERE user_name = $1 AND idea_id = $2`

	var vote models.VoteDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &vote, query, username, ideaID)

	logQuery(query, []any{username, ideaID}, vote.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// Save inserts a vote. A second vote of the same user on the same idea yields ErrAlreadyExists.
func (r *VoteRepository) Save(ctx context.Context, username string, ideaID int64, direction models.Direction) (*models.VoteDB, error) {
	if !direction.Valid() {
		return nil, ErrInvalidDirection
	}

	query := `
		INSERT INTO votes (direction, user_name, idea_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + voteColumns

	var vote models.VoteDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &vote, query, direction, username, ideaID)

	logQuery(query, []any{direction, username, ideaID}, vote.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &vote, nil
}

// Delete removes a vote by id. Returns sql.ErrNoRows when nothing was deleted.
func (r *VoteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM votes WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByUser returns every standing vote of username, newest first.
func (r *VoteRepository) ListByUser(ctx context.Context, username string) ([]models.VoteDB, error) {
	query := `SELECT ` + voteColumns + ` FROM votes WHERE user_name = $1 ORDER BY created_at DESC, id DESC`

	votes := []models.VoteDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &votes, query, username)

	logQuery(query, []any{username}, len(votes), err)

	return votes, err
}

// CountByIdea returns the number of standing votes per direction on ideaID.
// It reads the ledger directly and is used to audit the idea counters.
func (r *VoteRepository) CountByIdea(ctx context.Context, ideaID int64) (up, down int64, err error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE direction = 1) AS up,
			COUNT(*) FILTER (WHERE direction = -1) AS down
		FROM votes
		WHERE idea_id = $1
	`

	var row struct {
		Up   int64 `db:"up"`
		Down int64 `db:"down"`
	}
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, ideaID)

	logQuery(query, []any{ideaID}, []int64{row.Up, row.Down}, err)

	return row.Up, row.Down, err
}
