package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dball/internal/config"
	"github.com/KirkDiggler/dball/internal/database"
	drawRepo "github.com/KirkDiggler/dball/internal/repositories/draw"
	settlementRepo "github.com/KirkDiggler/dball/internal/repositories/settlement"
	ticketRepo "github.com/KirkDiggler/dball/internal/repositories/ticket"
)

// storage bundles the repositories of one backend
type storage struct {
	tickets     ticketRepo.Repository
	draws       drawRepo.Repository
	settlements settlementRepo.Repository
	ping        func() error
	close       func() error
}

func newStorage(cfg *config.Config) (*storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageSQLite:
		return newSQLiteStorage(cfg.SQLite)
	default:
		return newRedisStorage(cfg.Redis)
	}
}

func newRedisStorage(cfg config.RedisConfig) (*storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	tickets, err := ticketRepo.NewRedis(&ticketRepo.Config{RedisClient: client})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create ticket repository: %w", err)
	}

	draws, err := drawRepo.NewRedis(&drawRepo.Config{RedisClient: client})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create draw repository: %w", err)
	}

	settlements, err := settlementRepo.NewRedis(&settlementRepo.Config{RedisClient: client})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create settlement repository: %w", err)
	}

	return &storage{
		tickets:     tickets,
		draws:       draws,
		settlements: settlements,
		ping: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err()
		},
		close: client.Close,
	}, nil
}

func newSQLiteStorage(cfg config.SQLiteConfig) (*storage, error) {
	db, err := database.Open(&database.Config{Path: cfg.Path})
	if err != nil {
		return nil, err
	}

	closeOnErr := func(err error) (*storage, error) {
		db.Close()
		return nil, err
	}

	tickets, err := ticketRepo.NewSQL(&ticketRepo.SQLConfig{DB: db})
	if err != nil {
		return closeOnErr(fmt.Errorf("failed to create ticket repository: %w", err))
	}

	draws, err := drawRepo.NewSQL(&drawRepo.SQLConfig{DB: db})
	if err != nil {
		return closeOnErr(fmt.Errorf("failed to create draw repository: %w", err))
	}

	settlements, err := settlementRepo.NewSQL(&settlementRepo.SQLConfig{DB: db})
	if err != nil {
		return closeOnErr(fmt.Errorf("failed to create settlement repository: %w", err))
	}

	return &storage{
		tickets:     tickets,
		draws:       draws,
		settlements: settlements,
		ping:        func() error { return pingSQL(db) },
		close:       db.Close,
	}, nil
}

func pingSQL(db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
