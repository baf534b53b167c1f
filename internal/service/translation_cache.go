package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// TranslationCache guarda traducciones ya resueltas; un fallo de cache
// degrada a una llamada normal al proveedor.
type TranslationCache interface {
	Get(ctx context.Context, sourceLang, targetLang, text string) (string, bool)
	Set(ctx context.Context, sourceLang, targetLang, text, translated string)
}

type redisTranslationCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisTranslationCache(client *redis.Client, ttl time.Duration) TranslationCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisTranslationCache{
		client: client,
		ttl:    ttl,
		prefix: "translate:",
	}
}

func (c *redisTranslationCache) key(sourceLang, targetLang, text string) string {
	sum := sha256.Sum256([]byte(sourceLang + "|" + targetLang + "|" + text))
	return c.prefix + hex.EncodeToString(sum[:])
}

func (c *redisTranslationCache) Get(ctx context.Context, sourceLang, targetLang, text string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, c.key(sourceLang, targetLang, text)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *redisTranslationCache) Set(ctx context.Context, sourceLang, targetLang, text, translated string) {
	if c == nil || c.client == nil || translated == "" {
		return
	}
	c.client.Set(ctx, c.key(sourceLang, targetLang, text), translated, c.ttl)
}
