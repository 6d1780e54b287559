package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/dinkwell/dinkwell/internal/assets"
	"github.com/dinkwell/dinkwell/internal/coaching"
	"github.com/dinkwell/dinkwell/internal/config"
	"github.com/dinkwell/dinkwell/internal/database"
	"github.com/dinkwell/dinkwell/internal/server"
	"github.com/dinkwell/dinkwell/internal/session"
	"github.com/dinkwell/dinkwell/internal/skill"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	data, err := assets.ReadCatalog(cfg.Catalog.File)
	if err != nil {
		return fmt.Errorf("assets.ReadCatalog() > %w", err)
	}
	catalog, err := coaching.ParseCatalog(data)
	if err != nil {
		return fmt.Errorf("coaching.ParseCatalog() > %w", err)
	}

	stores := func(userID string) coaching.Store {
		return coaching.NewDBStore(db, userID)
	}
	handler := server.NewHandler(
		session.NewDBRepository(db),
		skill.NewDBRepository(db),
		catalog,
		stores,
		slog.Default(),
		nil,
	)

	mux := http.NewServeMux()
	handler.Register(mux)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("starting server", slog.String("addr", addr))
	return http.ListenAndServe(addr, server.CORSMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins))
}

func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("DINKWELL_CONFIG")
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
