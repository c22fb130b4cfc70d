package app

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AxelVC22/Inmuebles-api/internal/config"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

const (
	connectAttempts = 5
	connectBackoff  = 3 * time.Second
)

// ConnectDB opens the pgx pool, retrying with a fixed backoff so the
// service survives the database coming up after it.
func ConnectDB(ctx context.Context, cfg *config.Config) *pgxpool.Pool {
	var pool *pgxpool.Pool
	var err error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err = pgxpool.Connect(ctx, cfg.DatabaseURL)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				utils.Logger.Info("connected to database")
				return pool
			}
			pool.Close()
		}
		utils.Logger.WithError(err).Warnf("database connection attempt %d/%d failed",
			attempt, connectAttempts)
		time.Sleep(connectBackoff)
	}

	utils.Logger.WithError(err).Fatal("could not connect to database")
	return nil
}
