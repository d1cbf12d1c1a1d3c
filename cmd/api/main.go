package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lumopress/user-directory/internal/api"
	"github.com/lumopress/user-directory/internal/core/service"
	mongodb "github.com/lumopress/user-directory/internal/infrastructure/db/mongo"
	redisdb "github.com/lumopress/user-directory/internal/infrastructure/db/redis"
	"github.com/lumopress/user-directory/internal/infrastructure/queue"
	"github.com/lumopress/user-directory/internal/pkg/config"
	"github.com/lumopress/user-directory/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "user-directory",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	identityRepo := mongodb.NewIdentityRepository(db)
	if err := identityRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account index creation failed")
	}
	profileRepo := mongodb.NewProfileRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	// --- Services ---
	syncSvc := service.NewSyncService(identityRepo, profileRepo, log)

	dispatcher := queue.NewDispatcher(cfg.EventWorkers, syncSvc, log)
	dispatcher.Start(ctx)

	directorySvc := service.NewDirectoryService(syncSvc, profileRepo, dispatcher, log)
	authSvc := service.NewAuthService(identityRepo, dispatcher, cfg.JWTSecret, 24*time.Hour)
	commentSvc := service.NewCommentService(commentRepo, log)

	// --- Page cache ---
	pageCache := redisdb.NewPageCache(rdb, cfg.Cache.Version, originLoader(cfg.Cache.OriginURL), log)
	if err := pageCache.Install(ctx, cfg.Cache.Precache); err != nil {
		// The origin may simply be down at boot; misses fall back later.
		log.Warn().Err(err).Msg("page precache incomplete")
	}
	if err := pageCache.Activate(ctx); err != nil {
		log.Warn().Err(err).Msg("page cache activation failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(api.RouterConfig{
		DB:           db,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		EventsSecret: cfg.EventsSecret,
		Auth:         authSvc,
		Directory:    directorySvc,
		Comments:     commentSvc,
		Dispatcher:   dispatcher,
		Pages:        pageCache,
		Logger:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("user directory listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// originLoader fetches page assets from the origin over HTTP.
func originLoader(baseURL string) redisdb.Loader {
	base := strings.TrimRight(baseURL, "/")
	client := &http.Client{Timeout: 10 * time.Second}

	return func(ctx context.Context, key string) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/"+key, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("origin fetch %s: status %d", key, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
}
