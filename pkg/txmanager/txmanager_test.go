package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefnasuacasa/CNSC-BookingService/pkg/dbmetrics"
)

// stubTx транзакция с заранее заданным результатом Commit
type stubTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *stubTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *stubTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *stubTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *stubTx) Rollback() error {
	t.rolledBack = true
	return nil
}

// stubBeginner выдает по одной транзакции на попытку
type stubBeginner struct {
	commitErrs []error
	begins     int
	txs        []*stubTx
}

func (b *stubBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	var commitErr error
	if b.begins < len(b.commitErrs) {
		commitErr = b.commitErrs[b.begins]
	}
	b.begins++

	tx := &stubTx{commitErr: commitErr}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func serializationFailure() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
}

func TestDoSerializable_RetriesConflictOnCommit(t *testing.T) {
	// Конфликт на COMMIT первой попытки, вторая проходит
	db := &stubBeginner{commitErrs: []error{serializationFailure(), nil}}
	m := NewTransactionManager(db)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, db.begins)
	assert.Equal(t, 2, calls)
	assert.True(t, db.txs[1].committed)
}

func TestDoSerializable_GivesUpAfterRetries(t *testing.T) {
	db := &stubBeginner{commitErrs: []error{
		serializationFailure(), serializationFailure(), serializationFailure(),
	}}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableRetries, db.begins)
	assert.ErrorIs(t, err, ErrCommitTx)

	// Код 40001 должен оставаться доступным через цепочку ошибок
	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pqSerializationFailure, string(pqErr.Code))
}

func TestDoSerializable_NonConflictCommitErrorNotRetried(t *testing.T) {
	db := &stubBeginner{commitErrs: []error{errors.New("connection reset")}}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommitTx)
	assert.Equal(t, 1, db.begins)
}

func TestDo_RollsBackOnFnError(t *testing.T) {
	db := &stubBeginner{}
	m := NewTransactionManager(db)

	fnErr := errors.New("insert failed")
	err := m.Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}
