package main

import (
	"log"

	"careerpath-backend/internal/bootstrap"
	"careerpath-backend/internal/shared/config"
	"careerpath-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (provider=%s)", addr, cfg.Provider)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
