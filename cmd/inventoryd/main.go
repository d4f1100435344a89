package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/guardwear/inventory/internal/adapter/handler"
	"github.com/guardwear/inventory/internal/adapter/storage"
	"github.com/guardwear/inventory/internal/config"
	"github.com/guardwear/inventory/internal/core/service"
	"github.com/guardwear/inventory/internal/port"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	db, err := sql.Open(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping store: %v", err)
	}
	log.Printf("connected to %s store", cfg.StoreDriver)

	store := storage.NewSQLStore(db)
	if cfg.StoreDriver == "sqlite3" {
		if err := store.Migrate(ctx); err != nil {
			log.Fatalf("failed to migrate schema: %v", err)
		}
	}

	// Low-stock alerts are optional; without Redis the ledger simply
	// records movements and the status report carries the flag.
	var rdb *redis.Client
	var alerts port.AlertPublisher
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		alerts = storage.NewRedisAlertPublisher(rdb)
		log.Println("low-stock alerts enabled")
	}

	catalog := service.NewCatalog(store)
	ledger := service.NewLedger(store, store, alerts)
	query := service.NewQuery(store)

	httpHandler := handler.NewHTTPHandler(catalog, ledger, query)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpHandler.Router(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	if rdb != nil {
		rdb.Close()
	}
	db.Close()
	log.Println("connections closed")
}
