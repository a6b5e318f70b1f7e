// Copyright (c) 2026 Merco. All rights reserved.
// Author: ngoc.phan.dev@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ngocphan/merco/internal/platform/apperr"
	"github.com/ngocphan/merco/internal/platform/constants"
)

// RedisProductCache implements the ProductCache interface on Redis.
//
// Entries are stored as JSON under "catalog:product:<id>". Serialization
// failures and transport failures both surface as plain errors; the service
// layer decides that they are non-fatal.
type RedisProductCache struct {
	client *redis.Client
}

// NewProductCache creates a Redis-backed product cache.
func NewProductCache(client *redis.Client) *RedisProductCache {
	return &RedisProductCache{client: client}
}

func productCacheKey(id string) string {
	return constants.RedisPrefixProduct + id
}

// Get returns the cached product, or [apperr.NotFound] on a miss.
func (cache *RedisProductCache) Get(ctx context.Context, id string) (*Product, error) {
	payload, err := cache.client.Get(ctx, productCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Product")
		}
		return nil, fmt.Errorf("redis_product_cache_get_failed: %w", err)
	}

	product := &Product{}
	if err := json.Unmarshal(payload, product); err != nil {
		// A corrupt entry is as good as a miss; the caller falls through to
		// the repository and the next Set overwrites it.
		return nil, fmt.Errorf("redis_product_cache_decode_failed: %w", err)
	}

	return product, nil
}

// Set stores the product for up to ttl.
func (cache *RedisProductCache) Set(ctx context.Context, product *Product, ttl time.Duration) error {
	payload, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("redis_product_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(ctx, productCacheKey(product.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_product_cache_set_failed: %w", err)
	}

	return nil
}

// Invalidate drops the cached entry for the given product ID.
func (cache *RedisProductCache) Invalidate(ctx context.Context, id string) error {
	if err := cache.client.Del(ctx, productCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("redis_product_cache_del_failed: %w", err)
	}

	return nil
}
