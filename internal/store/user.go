// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"speaksmart/internal/database"
	"speaksmart/internal/model"
)

// CreateUser inserts a registered student or teacher. Categorie is stored comma-joined, or NULL when empty.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO utenti (nome, email, ruolo, categorie)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Nome,
		u.Email,
		u.Ruolo,
		joinCategories(u.Categorie),
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, id int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, nome, COALESCE(email, ''), ruolo, categorie, created_at
		 FROM utenti WHERE id = $1`,
		id,
	)
	u := &model.User{}
	var cats *string
	if err := row.Scan(
		&u.ID,
		&u.Nome,
		&u.Email,
		&u.Ruolo,
		&cats,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	u.Categorie = splitCategories(cats)
	return u, nil
}
