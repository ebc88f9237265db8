package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE profiles").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = Wrap(db).RunInTransaction(context.Background(), func(q Queryer) error {
		_, err := q.Exec(context.Background(), "UPDATE profiles SET plan = 'pro'")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_Rollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = Wrap(db).RunInTransaction(context.Background(), func(Queryer) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_BeginFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err = Wrap(db).RunInTransaction(context.Background(), func(Queryer) error {
		called = true
		return nil
	})

	assert.ErrorContains(t, err, "begin transaction")
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_QueriesShareTheTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT plan FROM profiles").
		WillReturnRows(sqlmock.NewRows([]string{"plan"}).AddRow("pro"))
	mock.ExpectExec("UPDATE profiles").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = Wrap(db).RunInTransaction(context.Background(), func(q Queryer) error {
		var plan string
		if err := q.QueryRow(context.Background(), "SELECT plan FROM profiles").Scan(&plan); err != nil {
			return err
		}
		_, err := q.Exec(context.Background(), "UPDATE profiles SET plan = 'free'")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
