package main

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Waddenn/filmoria/internal/appinfo"
	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/config"
	"github.com/Waddenn/filmoria/internal/db"
	"github.com/Waddenn/filmoria/internal/genres"
	"github.com/Waddenn/filmoria/internal/history"
	"github.com/Waddenn/filmoria/internal/logging"
	"github.com/Waddenn/filmoria/internal/player"
	"github.com/Waddenn/filmoria/internal/store"
	"github.com/Waddenn/filmoria/internal/tmdb"
)

// app holds everything a command needs.
type app struct {
	cfg *config.Config
	log *logrus.Logger
	db  *sql.DB

	client    *tmdb.Client
	catalog   *catalog.Catalog
	genres    *genres.Catalog
	history   *history.Repository
	player    *player.Player
	artClient *http.Client
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func setup() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.FromConfig(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	a := &app{cfg: cfg, log: log}

	kv, err := a.openStore()
	if err != nil {
		return nil, err
	}

	info := appinfo.Default()
	a.client = tmdb.New(cfg.TMDB.Token,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithTimeout(cfg.TMDB.Timeout.Duration),
		tmdb.WithRateLimit(cfg.TMDB.RequestsPerSecond(), cfg.TMDB.Burst),
		tmdb.WithUserAgent(info.UserAgent),
		tmdb.WithLogger(log),
	)
	a.catalog = catalog.New(a.client, log)
	a.genres = genres.New(a.client, log)
	a.history = history.New(kv)
	a.player = player.New(cfg.Player)
	a.artClient = &http.Client{Timeout: cfg.TMDB.Timeout.Duration}

	log.WithFields(logrus.Fields{
		"version": info.Version,
		"storage": cfg.Storage.Backend,
	}).Debug("initialized")
	return a, nil
}

func (a *app) openStore() (store.KV, error) {
	switch a.cfg.Storage.Backend {
	case "file":
		dir := a.cfg.Storage.Path
		if dir == "" {
			cache, err := config.CacheDir()
			if err != nil {
				return nil, err
			}
			dir = cache
		}
		return store.NewFileStore(afero.NewOsFs(), dir)
	default:
		d, err := db.Open(a.cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
		a.db = d
		return store.New(d), nil
	}
}

func (a *app) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
