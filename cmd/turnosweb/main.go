package main

import (
	"errors"
	"log"
	"net/http"

	"turnosweb/internal/adapter/backend"
	adapthttp "turnosweb/internal/adapter/http"
	"turnosweb/internal/adapter/memory"
	"turnosweb/internal/app"
	"turnosweb/internal/config"
	"turnosweb/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gateway := backend.New(cfg.BackendURL)
	cache := memory.NewProfileCache()
	sessions := session.New(cache)

	authSvc := app.NewAuthService(gateway)
	shiftSvc := app.NewShiftService(gateway, cache)

	h := adapthttp.New(authSvc, shiftSvc, sessions, cfg.BotUsername, cfg.AllowedOrigins).Handler()
	log.Printf("listening on %s (backend %s)", cfg.Addr, cfg.BackendURL)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
