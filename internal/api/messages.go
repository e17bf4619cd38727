package api

// User-facing messages. Clients show them as-is.
const (
	MsgInvalidBody = "Richiesta non valida."

	MsgEnrollmentRequired = "Nome, email ed edizione sono obbligatori."
	MsgEnrollmentSave     = "Errore durante il salvataggio nel database."
	MsgEnrollmentList     = "Errore durante il recupero delle iscrizioni."
	MsgEnrollmentExport   = "Errore durante l'esportazione delle iscrizioni."

	MsgStudentRequired = "Email e almeno una categoria sono obbligatorie."
	MsgStudentSave     = "Errore durante la registrazione dello studente."
	MsgTeacherRequired = "L'email è obbligatoria per il docente."
	MsgTeacherSave     = "Errore durante la registrazione del docente."

	MsgLessonRequired = "Titolo e categoria sono obbligatori."
	MsgLessonSave     = "Errore durante il salvataggio della lezione."
	MsgLessonList     = "Errore durante il recupero delle lezioni."

	MsgRequestRequired = "Categoria e messaggio sono obbligatori."
	MsgRequestSave     = "Errore durante il salvataggio della richiesta."
	MsgRequestList     = "Errore durante il recupero delle richieste."

	MsgUnknownCategory = "Categoria non valida."

	MsgMissingToken   = "Sessione mancante."
	MsgInvalidSession = "Sessione non valida o scaduta."
	MsgForbiddenRole  = "Operazione consentita solo ai docenti."
	MsgSessionError   = "Errore durante la verifica della sessione."

	MsgTooManyRequests = "Troppe richieste, riprova tra poco."
	MsgInternal        = "Errore interno del server."
)
