package main

import (
	"log"
	"net/http"

	"voltswap_client/internal/config"
	"voltswap_client/internal/logger"
	"voltswap_client/internal/middleware"
	"voltswap_client/internal/mockapi"
	"voltswap_client/internal/routes"

	logrus "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogPath, logrus.DebugLevel)

	// Seed the in-memory backend state
	store := mockapi.NewStore(cfg.OTPTTL)
	store.Seed()

	// Setup Gin router
	r := routes.SetupRouter(store, cfg.JWTSecret)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🔋 Mock backend running at %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
