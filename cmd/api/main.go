package main

import (
	"net/http"
	"os"
	"time"

	"breeder-album/internal/platform/logger"
	"breeder-album/internal/router"
)

// @title breeder-album API
// @version 1.0
// @description Catálogo de reproductores: álbum, árbol genealógico, timeline de eventos de cría y estado de ciclo.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
