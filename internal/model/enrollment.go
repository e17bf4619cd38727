// File: internal/model/enrollment.go
package model

import "time"

// Enrollment is one course enrollment form submission.
type Enrollment struct {
	ID         int       `db:"id" json:"id"`
	Nome       string    `db:"nome" json:"nome"`
	Email      string    `db:"email" json:"email"`
	Telefono   *string   `db:"telefono" json:"telefono"`
	Eta        *int      `db:"eta" json:"eta"`
	Edizione   string    `db:"edizione" json:"edizione"`
	Obiettivi  *string   `db:"obiettivi" json:"obiettivi"`
	Esperienza *string   `db:"esperienza" json:"esperienza"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
