package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ironvale/bountyhall/internal/config"
	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/profile"
)

// OpenStore opens the profile store selected by cfg.StoreDriver. For
// postgres the embedded goose migrations run first.
func OpenStore(ctx context.Context, cfg *config.Config) (profile.Store, error) {
	var store profile.Store

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store = profile.NewMemoryStore()

	case config.StoreDriverSQLite:
		s, err := profile.NewSQLiteStore(cfg.SQLitePath, cfg.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		store = s

	case config.StoreDriverPostgres:
		connString := cfg.GetDBConnString()
		if err := profile.MigratePostgres(connString); err != nil {
			return nil, fmt.Errorf("failed to migrate profile schema: %w", err)
		}
		pool, err := pgxpool.New(ctx, connString)
		if err != nil {
			return nil, fmt.Errorf("failed to create connection pool: %w", err)
		}
		s, err := profile.NewPostgresStore(pool, cfg.PlayerID)
		if err != nil {
			pool.Close()
			return nil, err
		}
		store = s

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	logger.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "player_id", cfg.PlayerID)
	return store, nil
}
