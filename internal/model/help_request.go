package model

import "time"

// HelpRequest is a question a student sends to the teachers of a category.
type HelpRequest struct {
	ID            int       `db:"id" json:"id"`
	NomeStudente  *string   `db:"nome_studente" json:"nome_studente"`
	EmailStudente *string   `db:"email_studente" json:"email_studente"`
	Categoria     string    `db:"categoria" json:"categoria"`
	Messaggio     string    `db:"messaggio" json:"messaggio"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
