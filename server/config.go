//go:build !js
// +build !js

package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the server configuration.
type Config struct {
	Port      int
	CardPath  string // empty serves the built-in sample card
	StaticDir string
	EnvFile   string
}

// ParseFlags reads flags, falling back to environment variables. Variables
// from the env file are loaded first and never override the real environment.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("valentine-card", flag.ContinueOnError)
	flags.IntVar(&cfg.Port, "port", 0, "HTTP server port")
	flags.StringVar(&cfg.CardPath, "config", "", "Card config file (.yaml, .yml or .json)")
	flags.StringVar(&cfg.StaticDir, "static", "", "Directory with main.js and other static files")
	flags.StringVar(&cfg.EnvFile, "env", ".env", "Optional env file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	if cfg.CardPath == "" {
		cfg.CardPath = os.Getenv("CARD_CONFIG")
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "."
	}

	return cfg, nil
}

// loadEnvFile loads path into the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
