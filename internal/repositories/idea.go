package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hivemind/internal/models"
)

const ideaColumns = `id, title, body, up_votes, down_votes, user_name, created_at, updated_at`

// IdeaRepository stores ideas and their aggregate vote counters.
type IdeaRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewIdeaRepository(db *sqlx.DB, txGetter TxGetter) *IdeaRepository {
	return &IdeaRepository{db: db, txGetter: txGetter}
}

// Save inserts a new idea owned by username.
func (r *IdeaRepository) Save(ctx context.Context, title, body, username string) (*models.IdeaDB, error) {
	query := `
		INSERT INTO ideas (title, body, user_name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + ideaColumns

	var idea models.IdeaDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &idea, query, title, body, username)

	logQuery(query, []any{title, username}, idea.ID, err)

	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetByID returns the idea or nil when it does not exist.
func (r *IdeaRepository) GetByID(ctx context.Context, id int64) (*models.IdeaDB, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// LockByID returns the idea and locks its row until the surrounding transaction ends.
// Every vote operation on the same idea is serialized behind this lock.
func (r *IdeaRepository) LockByID(ctx context.Context, id int64) (*models.IdeaDB, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

// Update replaces title and body of an idea. Returns nil when it does not exist.
func (r *IdeaRepository) Update(ctx context.Context, id int64, title, body string) (*models.IdeaDB, error) {
	query := `
		UPDATE ideas SET title = $2, body = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + ideaColumns
	return r.getOne(ctx, query, id, title, body)
}

// Delete removes an idea and returns the removed row, or nil when it does not exist.
// Votes and comments go with it through ON DELETE CASCADE.
func (r *IdeaRepository) Delete(ctx context.Context, id int64) (*models.IdeaDB, error) {
	query := `DELETE FROM ideas WHERE id = $1 RETURNING ` + ideaColumns
	return r.getOne(ctx, query, id)
}

// IncrementUp adds one standing upvote to the idea counters.
func (r *IdeaRepository) IncrementUp(ctx context.Context, id int64) (*models.IdeaDB, error) {
	return r.adjust(ctx, `UPDATE ideas SET up_votes = up_votes + 1, updated_at = NOW() WHERE id = $1`, id)
}

// DecrementUp removes one standing upvote. Returns sql.ErrNoRows when the counter is already zero.
func (r *IdeaRepository) DecrementUp(ctx context.Context, id int64) (*models.IdeaDB, error) {
	return r.adjust(ctx, `UPDATE ideas SET up_votes = up_votes - 1, updated_at = NOW() WHERE id = $1 AND up_votes > 0`, id)
}

// IncrementDown adds one standing downvote to the idea counters.
func (r *IdeaRepository) IncrementDown(ctx context.Context, id int64) (*models.IdeaDB, error) {
	return r.adjust(ctx, `UPDATE ideas SET down_votes = down_votes + 1, updated_at = NOW() WHERE id = $1`, id)
}

// DecrementDown removes one standing downvote. Returns sql.ErrNoRows when the counter is already zero.
func (r *IdeaRepository) DecrementDown(ctx context.Context, id int64) (*models.IdeaDB, error) {
	return r.adjust(ctx, `UPDATE ideas SET down_votes = down_votes - 1, updated_at = NOW() WHERE id = $1 AND down_votes > 0`, id)
}

func (r *IdeaRepository) adjust(ctx context.Context, update string, id int64) (*models.IdeaDB, error) {
	query := update + ` RETURNING ` + ideaColumns

	var idea models.IdeaDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &idea, query, id)

	logQuery(query, []any{id}, []int64{idea.UpVotes, idea.DownVotes}, err)

	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *IdeaRepository) getOne(ctx context.Context, query string, args ...any) (*models.IdeaDB, error) {
	var idea models.IdeaDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &idea, query, args...)

	logQuery(query, args, idea.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// Count returns the number of ideas.
func (r *IdeaRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM ideas`)
}

// List returns a page of ideas, newest first.
func (r *IdeaRepository) List(ctx context.Context, page int) ([]models.IdeaDB, error) {
	query := `
		SELECT ` + ideaColumns + `
		FROM ideas
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	ideas := []models.IdeaDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ideas, query, models.PageSize, models.Offset(page))

	logQuery(query, []any{page}, len(ideas), err)

	return ideas, err
}

const controversialFilter = `
		FROM ideas
		WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'
		  AND up_votes - down_votes BETWEEN -2 AND 2
`

// CountControversial counts ideas of the last 7 days whose vote balance is within [-2, 2].
func (r *IdeaRepository) CountControversial(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*)`+controversialFilter)
}

// Controversial returns ideas of the last 7 days with a vote balance within [-2, 2],
// ordered by total number of votes.
func (r *IdeaRepository) Controversial(ctx context.Context, page int) ([]models.RankedIdeaDB, error) {
	query := `
		SELECT ` + ideaColumns + `, up_votes - down_votes AS score` + controversialFilter + `
		ORDER BY up_votes + down_votes DESC, id
		LIMIT $1 OFFSET $2
	`
	return r.ranked(ctx, query, page)
}

// CountUnpopularMainstream counts ideas that received votes in the last 7 days.
func (r *IdeaRepository) CountUnpopularMainstream(ctx context.Context) (int64, error) {
	return r.count(ctx, `
		SELECT COUNT(DISTINCT idea_id)
		FROM votes
		WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'
	`)
}

// Unpopular returns ideas voted in the last 7 days ordered by vote sum ascending.
func (r *IdeaRepository) Unpopular(ctx context.Context, page int) ([]models.RankedIdeaDB, error) {
	return r.ranked(ctx, recentVoteSumQuery("ASC"), page)
}

// Mainstream returns ideas voted in the last 7 days ordered by vote sum descending.
func (r *IdeaRepository) Mainstream(ctx context.Context, page int) ([]models.RankedIdeaDB, error) {
	return r.ranked(ctx, recentVoteSumQuery("DESC"), page)
}

func recentVoteSumQuery(order string) string {
	return `
		SELECT i.id, i.title, i.body, i.up_votes, i.down_votes, i.user_name, i.created_at, i.updated_at,
		       SUM(v.direction) AS score
		FROM votes v
		JOIN ideas i ON i.id = v.idea_id
		WHERE v.created_at >= CURRENT_DATE - INTERVAL '7 days'
		GROUP BY i.id
		ORDER BY score ` + order + `, i.id
		LIMIT $1 OFFSET $2
	`
}

func (r *IdeaRepository) ranked(ctx context.Context, query string, page int) ([]models.RankedIdeaDB, error) {
	ideas := []models.RankedIdeaDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ideas, query, models.PageSize, models.Offset(page))

	logQuery(query, []any{page}, len(ideas), err)

	return ideas, err
}

func (r *IdeaRepository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)

	logQuery(query, nil, n, err)

	return n, err
}
