//go:build !js
// +build !js

package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/simukka/valentine-card/card"
)

func main() {
	cfg, err := ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	content, err := loadCard(cfg.CardPath)
	if err != nil {
		slog.Error("card config unavailable", "path", cfg.CardPath, "error", err)
		os.Exit(1)
	}

	router, err := NewRouter(content, cfg.StaticDir)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	server := http.Server{
		Handler: router,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Valentine card server starting", "url", "http://localhost:"+strconv.Itoa(cfg.Port))
	slog.Info("Serving static files", "dir", cfg.StaticDir)

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// loadCard reads and validates the card config. Invalid fields are repaired
// and logged; only a missing or unreadable file is fatal.
func loadCard(path string) (*card.Config, error) {
	var (
		content *card.Config
		err     error
	)
	if path == "" {
		slog.Info("No card config given, using the sample card")
		content = card.Default()
	} else {
		content, err = card.Load(path)
		if err != nil {
			return nil, err
		}
		slog.Info("Loaded card config", "path", path)
	}

	for _, w := range card.Validate(content) {
		slog.Warn("configuration warning", "warning", w)
	}
	return content, nil
}
