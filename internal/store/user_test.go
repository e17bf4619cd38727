package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"speaksmart/internal/database"
	"speaksmart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	now := time.Now().UTC()

	t.Run("student categories are joined", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return database.FakeRow{Values: []any{9, now}}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{
			Email:     "s@example.com",
			Ruolo:     model.RoleStudent,
			Categorie: []string{"problemi-ansia", "conoscenza-di-se"},
		})
		require.NoError(t, err)
		require.Equal(t, 9, u.ID)
		require.Equal(t, model.RoleStudent, gotArgs[2])
		require.Equal(t, "problemi-ansia,conoscenza-di-se", *gotArgs[3].(*string))
	})

	t.Run("teacher stores NULL categories", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return database.FakeRow{Values: []any{10, now}}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{Email: "d@example.com", Ruolo: model.RoleTeacher})
		require.NoError(t, err)
		require.Nil(t, gotArgs[3])
	})

	t.Run("error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return database.FakeRow{Err: errors.New("dup")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.ErrorContains(t, err, "CreateUser")
	})
}

func TestGetUserByID(t *testing.T) {
	now := time.Now().UTC()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{4}, args)
			return database.FakeRow{Values: []any{4, "Ada", "a@example.com", model.RoleStudent, "a,b", now}}
		},
	}
	u, err := GetUserByID(context.Background(), db, 4)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, u.Categorie)
	require.Equal(t, "Ada", *u.Nome)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return database.FakeRow{Err: pgx.ErrNoRows}
	}
	_, err = GetUserByID(context.Background(), db, 4)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}
