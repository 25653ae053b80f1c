package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/allandeluna/brainstash/internal/platform/db"
	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("content repository: content not found")
	ErrQueryFailed = errors.New("content repository: query failed")
)

type Repository struct {
	db db.Executor
}

func NewRepository(executor db.Executor) *Repository {
	return &Repository{db: executor}
}

const contentColumns = `id, author_id, content, content_type, created_at`

const queryContentListByAuthor = `SELECT ` + contentColumns + ` FROM contents WHERE author_id = $1 ORDER BY created_at DESC`

func (r *Repository) ListByAuthor(ctx context.Context, authorID string) ([]Content, error) {
	rows, err := r.db.QueryContext(ctx, queryContentListByAuthor, authorID)
	if err != nil {
		return nil, fmt.Errorf("%w: list contents for author %s: %v", ErrQueryFailed, authorID, err)
	}
	defer rows.Close()

	contents := []Content{}
	for rows.Next() {
		var c Content
		if err := rows.Scan(&c.ID, &c.AuthorID, &c.Content, &c.ContentType, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan content row: %v", ErrQueryFailed, err)
		}
		contents = append(contents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate content rows: %v", ErrQueryFailed, err)
	}
	return contents, nil
}

type CreateContentParams struct {
	AuthorID    string
	Content     string
	ContentType string
}

const queryContentCreate = `
INSERT INTO contents (id, author_id, content, content_type)
VALUES ($1, $2, $3, $4)
RETURNING ` + contentColumns

func (r *Repository) Create(ctx context.Context, params CreateContentParams) (Content, error) {
	var c Content
	row := r.db.QueryRowContext(ctx, queryContentCreate,
		uuid.NewString(), params.AuthorID, params.Content, params.ContentType)

	err := row.Scan(&c.ID, &c.AuthorID, &c.Content, &c.ContentType, &c.CreatedAt)
	if err != nil {
		return c, fmt.Errorf("%w: create content for author %s: %v", ErrQueryFailed, params.AuthorID, err)
	}
	return c, nil
}

const queryContentDelete = `DELETE FROM contents WHERE id = $1 AND author_id = $2`

// Delete removes a content row. The author filter keeps one user from
// deleting another's content; a miss on either column is ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id, authorID string) error {
	res, err := r.db.ExecContext(ctx, queryContentDelete, id, authorID)
	if err != nil {
		return fmt.Errorf("%w: delete content %s: %v", ErrQueryFailed, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete content %s: %v", ErrQueryFailed, id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
