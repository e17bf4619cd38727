package store

import (
	"context"
	"fmt"

	"speaksmart/internal/database"
	"speaksmart/internal/model"
)

func CreateHelpRequest(ctx context.Context, db database.DB, r *model.HelpRequest) (*model.HelpRequest, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO richieste (nome_studente, email_studente, categoria, messaggio)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		r.NomeStudente,
		r.EmailStudente,
		r.Categoria,
		r.Messaggio,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateHelpRequest: %w", err)
	}
	return r, nil
}

// ListHelpRequests returns requests newest first. An empty categoria returns all of them.
func ListHelpRequests(ctx context.Context, db database.DB, categoria string) ([]model.HelpRequest, error) {
	query, args := filterByCategory(
		`SELECT id, nome_studente, email_studente, categoria, messaggio, created_at FROM richieste`,
		categoria,
	)
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListHelpRequests: %w", err)
	}
	defer rows.Close()

	out := []model.HelpRequest{}
	for rows.Next() {
		var r model.HelpRequest
		if err := rows.Scan(
			&r.ID,
			&r.NomeStudente,
			&r.EmailStudente,
			&r.Categoria,
			&r.Messaggio,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListHelpRequests: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListHelpRequests: %w", err)
	}
	return out, nil
}
