package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestAdvisoryLockAcquireRelease(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	key := "aggregate:2024-03-01"
	mock.ExpectQuery(regexp.QuoteMeta("SELECT pg_try_advisory_lock($1)")).
		WithArgs(advisoryKey(key)).
		WillReturnRows(sqlmock.NewRows([]string{"pg_try_advisory_lock"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_unlock($1)")).
		WithArgs(advisoryKey(key)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	lock := NewAdvisoryLock(db)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)

	// a second acquire in the same process must not hit the database
	ok, err = lock.Acquire(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, lock.Release(ctx, key))
	require.NoError(t, lock.Release(ctx, key))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvisoryLockHeldElsewhere(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT pg_try_advisory_lock($1)")).
		WithArgs(advisoryKey("k")).
		WillReturnRows(sqlmock.NewRows([]string{"pg_try_advisory_lock"}).AddRow(false))

	ok, err := NewAdvisoryLock(db).Acquire(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected lock to be reported as held")
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvisoryKeyIsStable(t *testing.T) {
	require.Equal(t, advisoryKey("aggregate:2024-03-01"), advisoryKey("aggregate:2024-03-01"))
	require.NotEqual(t, advisoryKey("aggregate:2024-03-01"), advisoryKey("aggregate:2024-03-02"))
}
