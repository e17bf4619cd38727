// File: internal/model/user.go
package model

import "time"

const (
	RoleStudent = "studente"
	RoleTeacher = "docente"
)

type User struct {
	ID        int       `db:"id" json:"id"`
	Nome      *string   `db:"nome" json:"nome"`
	Email     string    `db:"email" json:"email"`
	Ruolo     string    `db:"ruolo" json:"ruolo"`
	Categorie []string  `db:"categorie" json:"categorie,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
