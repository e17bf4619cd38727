package api

import (
	"time"

	"speaksmart/internal/model"
)

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Titolo e categoria sono obbligatori."`
}

// Fail builds the error body every endpoint returns.
func Fail(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// swagger:model api.CreatedResponse
type CreatedResponse struct {
	Success   bool      `json:"success" example:"true"`
	ID        int       `json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func Created(id int, at time.Time) CreatedResponse {
	return CreatedResponse{Success: true, ID: id, CreatedAt: at}
}

// swagger:model api.RegistrationResponse
type RegistrationResponse struct {
	CreatedResponse
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// swagger:model api.LessonListResponse
type LessonListResponse struct {
	Success bool           `json:"success" example:"true"`
	Lezioni []model.Lesson `json:"lezioni"`
}

// swagger:model api.HelpRequestListResponse
type HelpRequestListResponse struct {
	Success   bool                `json:"success" example:"true"`
	Richieste []model.HelpRequest `json:"richieste"`
}

// swagger:model api.EnrollmentListResponse
type EnrollmentListResponse struct {
	Success    bool               `json:"success" example:"true"`
	Iscrizioni []model.Enrollment `json:"iscrizioni"`
}

// swagger:model api.CategoryListResponse
type CategoryListResponse struct {
	Success   bool             `json:"success" example:"true"`
	Categorie []model.Category `json:"categorie"`
}

// swagger:model api.SessionResponse
type SessionResponse struct {
	Success   bool       `json:"success" example:"true"`
	Utente    model.User `json:"utente"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// swagger:model api.OKResponse
type OKResponse struct {
	Success bool `json:"success" example:"true"`
}
