package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction_Commit(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		_, ok := GetQuerier(ctx, db).(pgx.Tx)
		assert.True(t, ok, "transaction not injected into context")
		return nil
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	expectedErr := errors.New("service error")
	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		return expectedErr
	})

	assert.ErrorIs(t, err, expectedErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_NestedReuse(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := WithTransaction(context.Background(), db, func(outer context.Context) error {
		return WithTransaction(outer, db, func(inner context.Context) error {
			assert.Same(t, GetQuerier(outer, db), GetQuerier(inner, db))
			return nil
		})
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_BeginError(t *testing.T) {
	mock, db := newMockDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := WithTransaction(context.Background(), db, func(ctx context.Context) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuerier_WithoutTransactionUsesPool(t *testing.T) {
	_, db := newMockDB(t)

	assert.Equal(t, db.Pool, GetQuerier(context.Background(), db))
}

func TestTxManager_NilRunsDirectly(t *testing.T) {
	var m *TxManager

	called := false
	err := m.WithinTransaction(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}
