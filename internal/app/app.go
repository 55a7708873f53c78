// Package app wires configuration into the post service and its stores.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/youruser/clubposts/internal/brand"
	"github.com/youruser/clubposts/internal/config"
	imagepkg "github.com/youruser/clubposts/internal/image"
	"github.com/youruser/clubposts/internal/layout"
	"github.com/youruser/clubposts/internal/metrics"
	"github.com/youruser/clubposts/internal/players"
	"github.com/youruser/clubposts/internal/posts"
	"github.com/youruser/clubposts/internal/store"
)

type App struct {
	Config   *config.Config
	Catalog  *layout.Catalog
	Brand    brand.Brand
	Players  players.Repository
	Store    store.GraphicStore
	Service  *posts.Service
	Registry *prometheus.Registry
	Log      *zap.Logger

	db    *sql.DB
	redis *redis.Client
}

// Build connects the configured backends: Postgres when database.dsn is
// set (CSV roster otherwise) and Redis when redis.addr is set (memory
// otherwise).
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log, Registry: prometheus.NewRegistry()}
	a.Registry.MustRegister(collectors.NewGoCollector())

	grid := layout.DefaultGrid()
	cat, err := layout.LoadCatalog(grid)
	if err != nil {
		return nil, fmt.Errorf("load layout catalog: %w", err)
	}
	a.Catalog = cat
	a.Brand = brand.Default().WithDefaultTheme(cfg.Brand.DefaultTheme)

	if cfg.Database.DSN != "" {
		db, err := players.OpenPostgres(cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("postgres ping failed: %w", err)
		}
		a.db = db
		a.Players = players.NewPostgresRepository(db)
		log.Info("player roster from postgres")
	} else {
		repo, err := players.LoadMemoryRepository(cfg.Roster.Path)
		if err != nil {
			return nil, fmt.Errorf("load roster: %w", err)
		}
		a.Players = repo
		log.Info("player roster from csv", zap.String("path", cfg.Roster.Path))
	}

	if cfg.Redis.Addr != "" {
		a.redis = store.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		rs := store.NewRedisStore(a.redis, cfg.Redis.TTL, log)
		if err := rs.Ping(ctx); err != nil {
			a.Close()
			return nil, err
		}
		a.Store = rs
		log.Info("graphic store on redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		a.Store = store.NewMemoryStore()
	}

	assets := imagepkg.NewAssets(
		imagepkg.WithTimeout(cfg.Assets.Timeout),
		imagepkg.WithBaseDir(cfg.Assets.BaseDir),
		imagepkg.WithAllowedHosts(cfg.Assets.AllowedHosts...),
		imagepkg.WithCacheSize(cfg.Assets.CacheSize),
	)
	svc, err := posts.NewService(posts.Deps{
		Catalog:      cat,
		Brand:        a.Brand,
		Players:      a.Players,
		Assets:       assets,
		Store:        a.Store,
		Metrics:      metrics.New(a.Registry),
		Logger:       log,
		LogoRef:      cfg.Assets.Logo,
		WhiteLogoRef: cfg.Assets.WhiteLogo,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Service = svc
	return a, nil
}

// Close releases database and redis connections.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
