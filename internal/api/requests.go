package api

// swagger:model api.CreateEnrollmentRequest
type CreateEnrollmentRequest struct {
	Nome       string  `json:"nome" validate:"required" example:"Ada Rossi"`
	Email      string  `json:"email" validate:"required" example:"ada@example.com"`
	Telefono   string  `json:"telefono" example:"+39 333 1234567"`
	Eta        FlexInt `json:"eta" swaggertype:"integer" example:"29"`
	Edizione   string  `json:"edizione" validate:"required" example:"autunno-2025"`
	Obiettivi  string  `json:"obiettivi"`
	Esperienza string  `json:"esperienza"`
}

// swagger:model api.RegisterStudentRequest
type RegisterStudentRequest struct {
	Nome      string   `json:"nome" example:"Ada"`
	Email     string   `json:"email" validate:"required" example:"ada@example.com"`
	Categorie []string `json:"categorie" validate:"required,min=1,dive,categoria" example:"problemi-ansia"`
}

// swagger:model api.RegisterTeacherRequest
type RegisterTeacherRequest struct {
	Nome  string `json:"nome" example:"Prof. Bianchi"`
	Email string `json:"email" validate:"required" example:"bianchi@example.com"`
}

// swagger:model api.CreateLessonRequest
type CreateLessonRequest struct {
	Titolo      string `json:"titolo" validate:"required" example:"Gestire l'ansia prima del colloquio"`
	Descrizione string `json:"descrizione"`
	Link        string `json:"link" example:"https://example.com/materiale.pdf"`
	Categoria   string `json:"categoria" validate:"required,categoria" example:"problemi-ansia"`
}

// swagger:model api.CreateHelpRequestRequest
type CreateHelpRequestRequest struct {
	Nome      string `json:"nome" example:"Ada"`
	Email     string `json:"email" example:"ada@example.com"`
	Categoria string `json:"categoria" validate:"required,categoria" example:"problemi-ansia"`
	Messaggio string `json:"messaggio" validate:"required" example:"ciao"`
}

// Optional maps an empty form value to NULL.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
