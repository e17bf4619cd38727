package store

import (
	"context"
	"fmt"

	"speaksmart/internal/database"
	"speaksmart/internal/model"
)

func CreateEnrollment(ctx context.Context, db database.DB, e *model.Enrollment) (*model.Enrollment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO iscrizioni (nome, email, telefono, eta, edizione, obiettivi, esperienza)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		e.Nome,
		e.Email,
		e.Telefono,
		e.Eta,
		e.Edizione,
		e.Obiettivi,
		e.Esperienza,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateEnrollment: %w", err)
	}
	return e, nil
}

// ListEnrollments returns every enrollment, newest first.
func ListEnrollments(ctx context.Context, db database.DB) ([]model.Enrollment, error) {
	rows, err := db.Query(ctx,
		`SELECT id, COALESCE(nome, ''), COALESCE(email, ''), telefono, eta,
		        COALESCE(edizione, ''), obiettivi, esperienza, created_at
		 FROM iscrizioni`+orderNewestFirst,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEnrollments: %w", err)
	}
	defer rows.Close()

	out := []model.Enrollment{}
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(
			&e.ID,
			&e.Nome,
			&e.Email,
			&e.Telefono,
			&e.Eta,
			&e.Edizione,
			&e.Obiettivi,
			&e.Esperienza,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListEnrollments: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEnrollments: %w", err)
	}
	return out, nil
}
