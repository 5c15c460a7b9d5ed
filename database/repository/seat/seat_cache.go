package seatRepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"seatadvisor/models"
)

const seatPoolCacheKey = "seats:pool"

// CachedSeatRepo decorates a SeatRepository with a Redis snapshot cache for
// the full pool. Reads fall back to the inner repository on any cache miss
// or failure; availability changes invalidate the snapshot so scoring never
// sees a stale pool for longer than one request.
type CachedSeatRepo struct {
	inner  SeatRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSeatRepo wraps inner with the given cache client and TTL.
func NewCachedSeatRepo(inner SeatRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSeatRepo {
	return &CachedSeatRepo{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

// GetAll serves the pool snapshot from Redis when fresh.
func (r *CachedSeatRepo) GetAll() ([]models.Seat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := r.cache.Get(ctx, seatPoolCacheKey).Result()
	if err == nil {
		var seats []models.Seat
		if jsonErr := json.Unmarshal([]byte(data), &seats); jsonErr == nil {
			return seats, nil
		}
		// Corrupt cache entry, fall through to the source of truth.
		r.cache.Del(ctx, seatPoolCacheKey)
	} else if err != redis.Nil {
		r.logger.Warn("seat cache read failed", zap.Error(err))
	}

	seats, err := r.inner.GetAll()
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(seats); jsonErr == nil {
		if setErr := r.cache.Set(ctx, seatPoolCacheKey, payload, r.ttl).Err(); setErr != nil {
			r.logger.Warn("seat cache write failed", zap.Error(setErr))
		}
	}
	return seats, nil
}

// GetByID bypasses the snapshot cache; single-seat reads are cheap.
func (r *CachedSeatRepo) GetByID(id int) (*models.Seat, error) {
	return r.inner.GetByID(id)
}

// SetAvailability writes through and invalidates the pool snapshot.
func (r *CachedSeatRepo) SetAvailability(id int, available bool) error {
	if err := r.inner.SetAvailability(id, available); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.cache.Del(ctx, seatPoolCacheKey).Err(); err != nil {
		r.logger.Warn("seat cache invalidation failed", zap.Error(err))
	}
	return nil
}

// EnsureSeeded delegates to the inner repository.
func (r *CachedSeatRepo) EnsureSeeded() error {
	return r.inner.EnsureSeeded()
}
