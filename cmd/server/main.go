package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/network/config"
	"github.com/d60-Lab/network/internal/api/handler"
	"github.com/d60-Lab/network/internal/api/router"
	"github.com/d60-Lab/network/internal/auth"
	"github.com/d60-Lab/network/internal/cache"
	"github.com/d60-Lab/network/internal/observability"
	"github.com/d60-Lab/network/internal/repository"
	"github.com/d60-Lab/network/internal/service"
	"github.com/d60-Lab/network/pkg/database"
	"github.com/d60-Lab/network/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.Init(ctx, cfg)
	if err != nil {
		logger.Fatal("observability init failed", zap.Error(err))
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, caching disabled", zap.Error(err))
		} else {
			c = cache.New(client, cfg.Redis.TTL)
		}
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	postRepo := repository.NewPostRepository(db)

	userSvc := service.NewUserService(userRepo)
	relSvc := service.NewRelationshipService(followRepo, userRepo, c)
	engSvc := service.NewEngagementService(likeRepo, postRepo, c)
	postSvc := service.NewPostService(postRepo, userRepo, likeRepo, followRepo, c)

	sessions := auth.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)
	h := handler.NewHandler(userSvc, relSvc, engSvc, postSvc, sessions)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.New(cfg, h, sessions),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown", zap.Error(err))
	}
}
