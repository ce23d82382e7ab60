// @title SwingShift Survey API
// @version 1.0
// @description Backend for the SwingShift shiftwork survey platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

package main

import (
	"log"

	"swingshift_backend/internal/app"
	"swingshift_backend/internal/config"
	"swingshift_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
