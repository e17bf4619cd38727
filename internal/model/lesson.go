package model

import "time"

type Lesson struct {
	ID          int       `db:"id" json:"id"`
	Titolo      string    `db:"titolo" json:"titolo"`
	Descrizione *string   `db:"descrizione" json:"descrizione"`
	Link        *string   `db:"link" json:"link"`
	Categoria   string    `db:"categoria" json:"categoria"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
