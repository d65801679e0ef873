//go:build !js
// +build !js

package main

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/simukka/valentine-card/card"
)

//go:embed templates/index.gohtml
var indexTemplate string

//go:embed assets
var assets embed.FS

// page is the data for the index template.
type page struct {
	Title   string
	Heading string
	Palette card.Palette
	Motion  card.Motion
	Scale   float64
}

// NewRouter builds the HTTP routes for a validated card config. The page and
// the config script are rendered once.
func NewRouter(cfg *card.Config, staticDir string) (http.Handler, error) {
	index, err := renderIndex(cfg)
	if err != nil {
		return nil, err
	}
	configJSON, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode card config: %w", err)
	}
	configJS := []byte("window.CARD_CONFIG = " + string(configJSON) + ";\n")

	assetFS, err := fs.Sub(assets, "assets")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	serveIndex := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(index)
	}
	r.Get("/", serveIndex)
	r.Get("/index.html", serveIndex)

	r.Get("/config.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(configJS)
	})

	r.Get("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(configJSON)
	})

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetFS))))

	// GopherJS bundle, music and anything else on disk
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))

	return r, nil
}

func renderIndex(cfg *card.Config) ([]byte, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, page{
		Title:   cfg.DocumentTitle(),
		Heading: cfg.Heading(),
		Palette: cfg.Palette,
		Motion:  cfg.Motion,
		Scale:   cfg.Motion.ExplosionScale.Or(card.DefaultExplosionScale),
	})
	if err != nil {
		return nil, fmt.Errorf("render index template: %w", err)
	}
	return buf.Bytes(), nil
}

// requestLogger logs each request with its status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Info("request completed",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
