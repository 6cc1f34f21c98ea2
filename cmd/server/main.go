package main

import (
	"context"
	"time"

	"truckops-backend/internal/api/middleware"
	"truckops-backend/internal/api/routes"
	"truckops-backend/internal/config"
	"truckops-backend/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer database.Disconnect(db.Client())

	redisClient := connectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	// Uploaded employee documents are served back from the upload tree.
	router.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(router, db, redisClient, cfg)

	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

// connectRedis returns a ready client, or nil when no address is
// configured or the instance is unreachable; the API runs uncached in
// that case.
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		logrus.Info("REDIS_ADDR not set, caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("redis unreachable, caching disabled")
		client.Close()
		return nil
	}

	logrus.WithField("addr", cfg.Redis.Addr).Info("connected to Redis")
	return client
}
