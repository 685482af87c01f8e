package goal

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupGoalMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func goalColumns() []string {
	return []string{"id", "user_id", "title", "description", "target_date", "completed", "created_at"}
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock, close := setupGoalMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO goals (user_id, title, description, target_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, description, target_date, completed, created_at
	`)).
		WithArgs(1, "Run a 10k", "", nil).
		WillReturnRows(sqlmock.NewRows(goalColumns()).
			AddRow(3, 1, "Run a 10k", "", nil, false, now))

	created, err := repo.Create(context.Background(), &Goal{UserID: 1, Title: "Run a 10k"})
	require.NoError(t, err)
	require.Equal(t, 3, created.ID)
	require.False(t, created.Completed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCountOpen_ExcludesCompleted(t *testing.T) {
	repo, mock, close := setupGoalMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT COUNT(*)
		FROM goals
		WHERE user_id = $1
		  AND completed = FALSE
	`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountOpen(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryComplete_NotOwned(t *testing.T) {
	repo, mock, close := setupGoalMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE goals
		SET completed = TRUE
		WHERE id = $1
		  AND user_id = $2
	`)).
		WithArgs(9, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Complete(context.Background(), 1, 9)
	require.ErrorIs(t, err, ErrGoalNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete(t *testing.T) {
	repo, mock, close := setupGoalMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM goals
		WHERE id = $1
		  AND user_id = $2
	`)).
		WithArgs(3, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1, 3))
	require.NoError(t, mock.ExpectationsWereMet())
}
