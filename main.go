package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/aniketgond098/servizoapp/cliparse"
	"github.com/aniketgond098/servizoapp/middleware"
	"github.com/aniketgond098/servizoapp/persist"
	"github.com/aniketgond098/servizoapp/router"
	"github.com/aniketgond098/servizoapp/state"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open durable storage (sqlite file or postgres)
	store, err := persist.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("storage open failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage ready", "type", cfg.DatabaseType)

	// Hydrate application state at the root path
	app := state.New(store, "/", cfg.TransitionDelay, cfg.SelfProviderID)

	// Create router
	mux := router.NewRouter(app)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
