package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/kelechio/movieql/internal/config"
	"github.com/kelechio/movieql/internal/db"
)

func main() {
	// Load configuration. This fails hard when JWT_SECRET is unset: a known
	// fallback secret would make every deployment forgeable.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	setupLogger(cfg.LogFormat)

	gdb, err := db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	slog.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	router, err := newRouter(gdb, cfg)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	slog.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(format string) {
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(h))
}
