package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hivemind/internal/models"
)

const commentColumns = `id, body, user_name, idea_id, created_at, updated_at`

type CommentRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentRepository(db *sqlx.DB, txGetter TxGetter) *CommentRepository {
	return &CommentRepository{db: db, txGetter: txGetter}
}

func (r *CommentRepository) Save(ctx context.Context, ideaID int64, username, body string) (*models.CommentDB, error) {
	query := `
		INSERT INTO comments (body, user_name, idea_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + commentColumns
	return r.getOne(ctx, query, body, username, ideaID)
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.CommentDB, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *CommentRepository) Update(ctx context.Context, id int64, body string) (*models.CommentDB, error) {
	query := `
		UPDATE comments SET body = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + commentColumns
	return r.getOne(ctx, query, id, body)
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) (*models.CommentDB, error) {
	query := `DELETE FROM comments WHERE id = $1 RETURNING ` + commentColumns
	return r.getOne(ctx, query, id)
}

// ListByIdea returns the comments of an idea, oldest first.
func (r *CommentRepository) ListByIdea(ctx context.Context, ideaID int64) ([]models.CommentDB, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE idea_id = $1 ORDER BY created_at, id`

	comments := []models.CommentDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &comments, query, ideaID)

	logQuery(query, []any{ideaID}, len(comments), err)

	return comments, err
}

func (r *CommentRepository) getOne(ctx context.Context, query string, args ...any) (*models.CommentDB, error) {
	var comment models.CommentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &comment, query, args...)

	logQuery(query, args, comment.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
