package utils

import (
	"context"
	"log"
	"time"

	"quadrafacil/config"

	"github.com/go-redis/redis/v8"
)

// IdentityCacheClient is the dedicated client for identity-profile caching.
var IdentityCacheClient *redis.Client

// InitIdentityCache initializes the Redis client for identity caching.
func InitIdentityCache() {
	IdentityCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisIdentityDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := IdentityCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Identity Cache): %v", err)
	}
}

// GetIdentityCacheClient returns the Redis client for identity caching.
func GetIdentityCacheClient() *redis.Client {
	if IdentityCacheClient == nil {
		InitIdentityCache()
	}
	return IdentityCacheClient
}
