// File: cmd/service/main.go
// @title        SpeakSmart API
// @version      1.0
// @description  Iscrizioni ai corsi, lezioni e richieste di aiuto di SpeakSmart.
// @host         localhost:3000
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
