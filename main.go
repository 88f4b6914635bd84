package main

import (
	"context"
	"fmt"
	"log"

	"github.com/TanthaiP001/spprosupply/configs"
	"github.com/TanthaiP001/spprosupply/middlewares"
	"github.com/TanthaiP001/spprosupply/routes"
	"github.com/TanthaiP001/spprosupply/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Rate limit store: ใช้ Redis เมื่อกำหนด REDIS_ADDR, ไม่งั้น in-memory
	var limitStore middlewares.RateLimitStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Println("⚠️ Redis unreachable, falling back to in-memory rate limiting:", err)
			limitStore = middlewares.NewMemoryStore()
		} else {
			log.Println("✅ Redis rate limit store connected:", cfg.RedisAddr)
			limitStore = middlewares.NewRedisStore(client)
		}
	} else {
		limitStore = middlewares.NewMemoryStore()
	}
	limiters := middlewares.NewRateLimiters(limitStore)

	// Blob store: local disk หรือ S3
	var store storage.BlobStore
	if cfg.UploadDriver == "s3" {
		s3Store, err := storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			log.Fatalf("s3 store init failed: %v", err)
		}
		log.Println("✅ S3 upload store ready:", cfg.S3Bucket)
		store = s3Store
	} else {
		store = storage.NewLocalStore(cfg.UploadDir)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, store, limiters)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
