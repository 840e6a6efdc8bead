package cli

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/pathviz/cache"
	"github.com/katalvlaran/pathviz/ctxlog"
	"github.com/katalvlaran/pathviz/server"
)

// redisPrefix namespaces cache keys in a shared Redis.
const redisPrefix = "pathviz:result:"

func serveCmd(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "serve", "[-addr ADDR]")
	addrFlag := fs.String("addr", e.cfg.Addr, "Listen address.")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}

	logger := ctxlog.FromContext(ctx)
	gin.SetMode(e.cfg.GinMode)

	var store cache.Store
	if e.cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: e.cfg.RedisAddr})
		defer func() { _ = client.Close() }()
		rs := cache.NewRedis(client, e.cfg.CacheTTL, redisPrefix)
		if err := rs.Ping(ctx); err != nil {
			logger.Warn("Redis unreachable at startup.", "addr", e.cfg.RedisAddr, "error", err)
		}
		store = rs
		logger.Info("Using Redis result cache.", "addr", e.cfg.RedisAddr, "ttl", e.cfg.CacheTTL)
	} else {
		store = cache.NewMemory(e.cfg.CacheSize)
		logger.Info("Using in-memory result cache.", "capacity", e.cfg.CacheSize)
	}

	srv := server.New(server.Config{
		Store:       store,
		MaxCells:    e.cfg.MaxCells,
		StreamDelay: e.cfg.StreamDelay,
		Logger:      logger,
	})

	return srv.Run(ctx, *addrFlag)
}
