package main

import (
	"holdhive/config"
	"holdhive/di"
	"holdhive/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
