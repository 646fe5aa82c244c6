package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Galina9911/test-api/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			Test API
//	@version		1.0
//	@description	Training API for practising HTTP clients and API testing

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the token.

// @host		localhost:3000
// @BasePath	/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file, using environment")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New()
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}
