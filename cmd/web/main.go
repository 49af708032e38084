package main

import (
	"helperbee_backend/internal/app"
	"helperbee_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err.Error())
	}
}
