package main

import (
	"estetica/config"
	"estetica/di"
	"estetica/shared/logger"
)

// @title Estetica API
// @version 1.0
// @description Appointment scheduling backend for a beauty clinic.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
