package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventPlanner/internal/models"
	"eventPlanner/internal/rules"
)

const commentColumns = `c.id, c.author_id, c.event_id, c.content, c.rate, c.created_at, c.updated_at, c.deleted_at`

var commentOrder = map[string]string{
	"id":        "c.id",
	"rate":      "c.rate",
	"createdAt": "c.created_at",
}

func scanComment(row scanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(
		&c.ID,
		&c.AuthorID,
		&c.EventID,
		&c.Content,
		&c.Rate,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	return c, err
}

// CreateComment stores a comment of author on event once the author is eligible.
func (s *Storage) CreateComment(ctx context.Context, authorID, eventID int64, content string, rate *int, now time.Time) (models.Comment, error) {
	const op = "storage.postgres.CreateComment"

	var c models.Comment

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		event, err := loadEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		author, err := getUser(ctx, tx, authorID, rules.ErrAuthorNotFound)
		if err != nil {
			return err
		}

		c, err = rules.NewComment(author, event, content, rate, now)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO comments (author_id, event_id, content, rate, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`

		err = tx.QueryRowContext(ctx, query, c.AuthorID, c.EventID, c.Content, c.Rate, c.CreatedAt).Scan(&c.ID)
		if err != nil {
			return fmt.Errorf("failed to create comment: %w", translate(err))
		}

		return nil
	})
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Storage) GetComment(ctx context.Context, id int64) (models.Comment, error) {
	const op = "storage.postgres.GetComment"

	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		WHERE c.id = $1 AND c.deleted_at IS NULL`

	c, err := scanComment(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, fmt.Errorf("%s: %w", op, rules.ErrCommentNotFound)
		}
		return models.Comment{}, fmt.Errorf("%s: failed to get comment: %w", op, err)
	}

	return c, nil
}

func (s *Storage) UpdateComment(ctx context.Context, id int64, content string, rate *int, now time.Time) (models.Comment, error) {
	const op = "storage.postgres.UpdateComment"

	var revised models.Comment

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		query := `
			SELECT ` + commentColumns + `
			FROM comments c
			WHERE c.id = $1 AND c.deleted_at IS NULL
			FOR UPDATE`

		current, err := scanComment(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return rules.ErrCommentNotFound
			}
			return fmt.Errorf("failed to get comment: %w", err)
		}

		revised, err = rules.ReviseComment(current, content, rate, now)
		if err != nil {
			return err
		}

		update := `
			UPDATE comments
			SET content = $1, rate = $2, updated_at = $3
			WHERE id = $4`

		if _, err = tx.ExecContext(ctx, update, revised.Content, revised.Rate, now, id); err != nil {
			return fmt.Errorf("failed to update comment: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	return revised, nil
}

func (s *Storage) DeleteComment(ctx context.Context, id int64, now time.Time) error {
	const op = "storage.postgres.DeleteComment"

	query := `
		UPDATE comments
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL`

	return execOne(ctx, s.DB, op, query, rules.ErrCommentNotFound, now, id)
}

func (s *Storage) PurgeComment(ctx context.Context, id int64) error {
	const op = "storage.postgres.PurgeComment"

	return execOne(ctx, s.DB, op, `DELETE FROM comments WHERE id = $1`, rules.ErrCommentNotFound, id)
}

func (s *Storage) ListComments(ctx context.Context, q models.ListQuery[models.CommentFilter]) ([]models.Comment, int, error) {
	const op = "storage.postgres.ListComments"

	w := &where{}
	w.add("c.deleted_at IS NULL")

	f := q.Filter
	if f.ID != nil {
		w.add("c.id = ?", *f.ID)
	}
	if f.AuthorID != nil {
		w.add("c.author_id = ?", *f.AuthorID)
	}
	if f.EventID != nil {
		w.add("c.event_id = ?", *f.EventID)
	}
	if f.Rate != nil {
		w.add("c.rate = ?", *f.Rate)
	}
	w.addPartial("c.content", f.Content)

	from := `
		FROM comments c` + w.String()

	total, err := countRows(ctx, s.DB, "SELECT COUNT(*)"+from, w.args)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := "SELECT " + commentColumns + from + orderBy(q.Order, commentOrder, "c.id ASC") + w.page(q.Page)

	rows, err := s.DB.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: failed to get comments: %w", op, err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: failed to scan comment: %w", op, err)
		}
		comments = append(comments, c)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: error iterating comments: %w", op, err)
	}

	return comments, total, nil
}
