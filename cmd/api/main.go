package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/RazanRezq/jadara-sub002/internal/auth"
	"github.com/RazanRezq/jadara-sub002/internal/config"
	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/logger"
	"github.com/RazanRezq/jadara-sub002/internal/notification"
	"github.com/RazanRezq/jadara-sub002/internal/queue"
	"github.com/RazanRezq/jadara-sub002/internal/server"
)

// @title HireReview API
// @version 1.0
// @description Review lifecycle and team notification API of the recruitment back office
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %s", err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)
	auth.Configure(cfg.SecretKey, cfg.AccessTokenTTL)
	auth.ConfigureLogging(log, cfg.LogAuthAttempt)

	db, err := database.NewDBInstance(database.NewDBConfig(cfg, log))
	if err != nil {
		log.Fatalf("Database failed to initialized: %s", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Failed to close database")
		}
	}()

	redisClient := connectRedis(cfg.RedisURL, log)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	var publisher notification.Publisher
	if cfg.RabbitMQURL != "" {
		mq, err := queue.NewRabbitMQ(cfg.RabbitMQURL, cfg.NotificationQueue, log)
		if err != nil {
			log.WithError(err).Error("RabbitMQ unavailable, broadcasts will not be published")
		} else {
			defer func() { _ = mq.Close() }()
			publisher = mq
		}
	}

	srv := server.NewServer(&server.MyServer{
		Config:    cfg,
		DB:        db,
		Log:       log,
		Redis:     redisClient,
		Publisher: publisher,
	})

	go func() {
		log.WithField("addr", srv.Addr).Info("API started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}

// connectRedis returns nil when url is empty or redis does not answer.
func connectRedis(url string, log logrus.FieldLogger) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.WithError(err).Error("Invalid REDIS_URL, rate limiting in memory")
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Error("Redis ping failed, rate limiting in memory")
		_ = client.Close()
		return nil
	}
	return client
}
