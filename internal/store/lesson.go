package store

import (
	"context"
	"fmt"

	"speaksmart/internal/database"
	"speaksmart/internal/model"
)

func CreateLesson(ctx context.Context, db database.DB, l *model.Lesson) (*model.Lesson, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO lezioni (titolo, descrizione, link, categoria)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		l.Titolo,
		l.Descrizione,
		l.Link,
		l.Categoria,
	)
	if err := row.Scan(&l.ID, &l.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateLesson: %w", err)
	}
	return l, nil
}

// ListLessons returns lessons newest first. An empty categoria returns all of them.
func ListLessons(ctx context.Context, db database.DB, categoria string) ([]model.Lesson, error) {
	query, args := filterByCategory(
		`SELECT id, titolo, descrizione, link, categoria, created_at FROM lezioni`,
		categoria,
	)
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListLessons: %w", err)
	}
	defer rows.Close()

	out := []model.Lesson{}
	for rows.Next() {
		var l model.Lesson
		if err := rows.Scan(
			&l.ID,
			&l.Titolo,
			&l.Descrizione,
			&l.Link,
			&l.Categoria,
			&l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListLessons: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListLessons: %w", err)
	}
	return out, nil
}
