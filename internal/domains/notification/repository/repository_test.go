package repository_test

import (
	"context"
	"flexwork/infras/otel/mocks"
	"flexwork/infras/postgres"
	"flexwork/internal/domains/notification/model"
	"flexwork/internal/domains/notification/repository"
	"flexwork/shared/changefeed"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectPending = `SELECT .+ FROM notifications WHERE \(notifications\.processed = \$1\) ORDER BY created_at ASC`
	claim         = `UPDATE notifications SET process_status = \$1, processed = \$2 WHERE \(\(notifications\.id = \$3\) AND \(notifications\.processed = \$4\)\)`
)

func newRepository(t *testing.T) (repository.Notification, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, changefeed.NewLocal(), mocks.NewOtel()), mock
}

func TestNotification_GetPending(t *testing.T) {
	t.Run("only unprocessed rows, oldest first, capped", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(selectPending + ` LIMIT \$2$`).
			ExpectQuery().
			WithArgs(false, 50).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "processed"}).
				AddRow("n-1", int64(1000), false).
				AddRow("n-2", int64(2000), false))

		pending, err := repo.GetPending(context.Background(), 50)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, "n-1", pending[0].ID)
		assert.False(t, pending[1].Processed)
	})

	t.Run("zero limit reads every unprocessed row", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(selectPending + `$`).
			ExpectQuery().
			WithArgs(false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		pending, err := repo.GetPending(context.Background(), 0)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestNotification_Claim(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "first claimant wins", affected: 1, want: true},
		{name: "already processed is not claimed again", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			mock.ExpectExec(claim).
				WithArgs(model.ProcessStatusProcessing, true, "n-1", false).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			claimed, err := repo.Claim(context.Background(), "n-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, claimed)
		})
	}
}
