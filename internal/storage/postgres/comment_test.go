package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPlanner/internal/rules"
)

func TestStorage_CreateComment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	createdAt := eventEnd.Add(-10 * 24 * time.Hour)
	afterEnd := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	rate := 4

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)
		mock.ExpectBegin()
		expectLoadEvent(mock,
			sqlmock.NewRows(participantCols).AddRow(int64(5), int64(10), int64(2), true, nil, createdAt, nil, nil),
			sqlmock.NewRows(commentCols))
		expectUser(mock, 2)
		mock.ExpectQuery(`INSERT INTO comments \(author_id, event_id, content, rate, created_at\)`).
			WithArgs(int64(2), int64(10), "great", 4, afterEnd).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectCommit()

		c, err := s.CreateComment(ctx, 2, 10, "great", &rate, afterEnd)
		require.NoError(t, err)
		assert.Equal(t, int64(3), c.ID)
		assert.Equal(t, int64(2), c.AuthorID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pending invitation", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)
		mock.ExpectBegin()
		expectLoadEvent(mock,
			sqlmock.NewRows(participantCols).AddRow(int64(5), int64(10), int64(2), false, nil, createdAt, nil, nil),
			sqlmock.NewRows(commentCols))
		expectUser(mock, 2)
		mock.ExpectRollback()

		_, err := s.CreateComment(ctx, 2, 10, "great", &rate, afterEnd)
		assert.ErrorIs(t, err, rules.ErrNotInvited)
		assert.NotErrorIs(t, err, rules.ErrEventNotFinished)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second comment", func(t *testing.T) {
		t.Parallel()

		s, mock := newMock(t)
		mock.ExpectBegin()
		expectLoadEvent(mock,
			sqlmock.NewRows(participantCols).AddRow(int64(5), int64(10), int64(2), true, nil, createdAt, nil, nil),
			sqlmock.NewRows(commentCols).AddRow(int64(3), int64(2), int64(10), "great", 4, afterEnd, nil, nil))
		expectUser(mock, 2)
		mock.ExpectRollback()

		_, err := s.CreateComment(ctx, 2, 10, "again", nil, afterEnd)
		assert.ErrorIs(t, err, rules.ErrAlreadyCommented)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStorage_UpdateCommentRateOutOfRange(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)
	afterEnd := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	rate := 6

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM comments c\s+WHERE c.id = \$1 AND c.deleted_at IS NULL\s+FOR UPDATE`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(commentCols).AddRow(int64(3), int64(2), int64(10), "great", 4, afterEnd, nil, nil))
	mock.ExpectRollback()

	_, err := s.UpdateComment(context.Background(), 3, "great", &rate, afterEnd)
	assert.ErrorIs(t, err, rules.ErrRateOutOfRange)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_GetCommentNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMock(t)
	mock.ExpectQuery(`FROM comments c`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(commentCols))

	_, err := s.GetComment(context.Background(), 99)
	assert.ErrorIs(t, err, rules.ErrCommentNotFound)
}
