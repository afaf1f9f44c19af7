package cache

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/internal/config"
	"golang.org/x/crypto/blake2b"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache guarda objetos serializados em JSON por chave
type Cache interface {
	GetObject(ctx context.Context, key string, dest any) (bool, error)
	SetObject(ctx context.Context, key string, value any) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisCache(ctx context.Context, cfg config.Redis) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
	}

	logrus.WithField("address", cfg.Address).Info("Conexão com Redis estabelecida com sucesso")

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (c *RedisCache) GetObject(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}

	return true, nil
}

func (c *RedisCache) SetObject(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.prefix+key, payload, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Noop é usado quando o cache está desabilitado
type Noop struct{}

func (Noop) GetObject(context.Context, string, any) (bool, error) {
	return false, nil
}

func (Noop) SetObject(context.Context, string, any) error {
	return nil
}

// Key gera uma chave determinística a partir do conteúdo das partes
func Key(namespace string, parts ...any) (string, error) {
	hash, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}

	encoder := json.NewEncoder(hash)
	for _, part := range parts {
		if err := encoder.Encode(part); err != nil {
			return "", fmt.Errorf("erro ao serializar parte da chave: %w", err)
		}
	}

	return namespace + ":" + hex.EncodeToString(hash.Sum(nil)), nil
}
