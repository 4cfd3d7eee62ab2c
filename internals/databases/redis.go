package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"gymtrack_backend/internals/configs"
)

// Redis dipakai untuk cache hasil statistik (cache-aside).
// Boleh nil → semua pemakai wajib degrade ke query langsung.
var Redis *redis.Client

func ConnectRedis() {
	addr := configs.RedisAddr
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR kosong, cache statistik nonaktif")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis tidak bisa dihubungi (%v), cache nonaktif", err)
		return
	}

	Redis = client
	log.Println("✅ Redis connected.")
}
