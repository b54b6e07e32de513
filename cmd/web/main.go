package main

import (
	"jobportal_backend/internal/app"
	"jobportal_backend/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		logger.Fatal("Server exited", "error", err.Error())
	}
}
