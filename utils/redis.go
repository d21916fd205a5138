// File: utils/redis.go
package utils

import (
	"context"
	"log"
	"time"

	"drivehub/config"

	"github.com/go-redis/redis/v8"
)

// NotifyClient is the Redis client backing the real-time notification channel.
var NotifyClient *redis.Client

// InitNotifyClient initializes the Redis client used for notification pub/sub.
func InitNotifyClient() {
	NotifyClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := NotifyClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Notify): %v", err)
	}
}

// GetNotifyClient returns the notification Redis client.
func GetNotifyClient() *redis.Client {
	if NotifyClient == nil {
		InitNotifyClient()
	}
	return NotifyClient
}
