package services

import (
	"context"
	"encoding/json"
	"jobboard-http-service/config"
	"jobboard-http-service/models"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheSession caches a session row until its expiry time
func (s *RedisService) CacheSession(session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.Set("session:"+session.SessionID, session, ttl)
}

// GetCachedSession gets a session from cache
func (s *RedisService) GetCachedSession(sessionID string) (*models.Session, error) {
	var session models.Session
	if err := s.Get("session:"+sessionID, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteCachedSession removes a session from cache
func (s *RedisService) DeleteCachedSession(sessionID string) error {
	return s.Delete("session:" + sessionID)
}
