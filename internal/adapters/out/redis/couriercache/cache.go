// Package couriercache keeps courier reference data in Redis in front of the
// courier repository. Booking counts are never cached.
package couriercache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"deliveryscheduler/internal/core/domain/model/courier"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config holds the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to Redis")
	}
	return client, nil
}

// CourierKey generates the cache key of a courier.
func CourierKey(id kernel.UUID) string {
	return fmt.Sprintf("courier:%s", id.String())
}

type entry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	VehicleType string `json:"vehicle_type"`
}

// Cache is a read-through courier cache. Redis failures are logged and the
// lookup falls through to the wrapped repository.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func New(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "courier-cache").Logger(),
	}
}

// Wrap returns a courier repository that consults the cache first.
func (c *Cache) Wrap(next ports.CourierRepository) ports.CourierRepository {
	return &cachedRepository{next: next, cache: c}
}

// Invalidate drops a cached courier.
func (c *Cache) Invalidate(ctx context.Context, id kernel.UUID) error {
	return errors.Wrap(c.client.Del(ctx, CourierKey(id)).Err(), "failed to delete courier from Redis")
}

func (c *Cache) get(ctx context.Context, id kernel.UUID) (*courier.Courier, bool) {
	data, err := c.client.Get(ctx, CourierKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("courier_id", id.String()).Msg("courier cache read failed")
		}
		return nil, false
	}

	var e entry
	if err = json.Unmarshal(data, &e); err != nil {
		c.logger.Warn().Err(err).Str("courier_id", id.String()).Msg("courier cache entry is corrupt")
		return nil, false
	}

	cached, err := courier.NewCourier(id, e.Name, e.PhoneNumber, e.VehicleType)
	if err != nil {
		return nil, false
	}
	return cached, true
}

func (c *Cache) set(ctx context.Context, value *courier.Courier) {
	data, err := json.Marshal(entry{
		ID:          value.ID().String(),
		Name:        value.Name(),
		PhoneNumber: value.PhoneNumber(),
		VehicleType: value.VehicleType(),
	})
	if err != nil {
		return
	}

	if err = c.client.Set(ctx, CourierKey(value.ID()), data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("courier_id", value.ID().String()).Msg("courier cache write failed")
	}
}

type cachedRepository struct {
	next  ports.CourierRepository
	cache *Cache
}

func (r *cachedRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if cached, ok := r.cache.get(ctx, id); ok {
		return cached, nil
	}

	value, err := r.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.cache.set(ctx, value)
	return value, nil
}
