// Package cli implements the command-line front end. Like the HTTP
// handler it is a thin adapter: it parses arguments, resolves names,
// derives the sign for each movement kind, and prints results.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/guardwear/inventory/internal/adapter/storage"
	"github.com/guardwear/inventory/internal/config"
	"github.com/guardwear/inventory/internal/core/service"
	"github.com/guardwear/inventory/internal/port"
)

// app wires the store and services for one command invocation.
type app struct {
	db      *sql.DB
	rdb     *redis.Client
	Catalog *service.Catalog
	Ledger  *service.Ledger
	Query   *service.Query
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()

	db, err := sql.Open(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	store := storage.NewSQLStore(db)
	if cfg.StoreDriver == "sqlite3" {
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	a := &app{db: db}
	var alerts port.AlertPublisher
	if cfg.RedisAddr != "" {
		a.rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		alerts = storage.NewRedisAlertPublisher(a.rdb)
	}

	a.Catalog = service.NewCatalog(store)
	a.Ledger = service.NewLedger(store, store, alerts)
	a.Query = service.NewQuery(store)
	return a, nil
}

func (a *app) Close() {
	if a.rdb != nil {
		a.rdb.Close()
	}
	a.db.Close()
}
