package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"trekkit/internal/model"
)

// MountainCache is a cache-aside layer over the mountain read paths. Mountain
// data changes rarely, so entries simply age out on TTL.
type MountainCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewMountainCache(client *redisv9.Client, ttl time.Duration) *MountainCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MountainCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *MountainCache) GetDetail(ctx context.Context, mountainID uint) (*model.Mountain, bool, error) {
	raw, err := c.client.Get(ctx, c.detailKey(mountainID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get mountain detail failed: %w", err)
	}

	var mountain model.Mountain
	if err := json.Unmarshal([]byte(raw), &mountain); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached mountain failed: %w", err)
	}
	return &mountain, true, nil
}

func (c *MountainCache) SetDetail(ctx context.Context, mountain *model.Mountain) error {
	payload, err := json.Marshal(mountain)
	if err != nil {
		return fmt.Errorf("marshal mountain cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.detailKey(mountain.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set mountain detail failed: %w", err)
	}
	return nil
}

func (c *MountainCache) GetList(ctx context.Context, name string, page int) ([]model.Mountain, bool, error) {
	raw, err := c.client.Get(ctx, c.listKey(name, page)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get mountain list failed: %w", err)
	}

	var mountains []model.Mountain
	if err := json.Unmarshal([]byte(raw), &mountains); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached mountain list failed: %w", err)
	}
	return mountains, true, nil
}

func (c *MountainCache) SetList(ctx context.Context, name string, page int, mountains []model.Mountain) error {
	payload, err := json.Marshal(mountains)
	if err != nil {
		return fmt.Errorf("marshal mountain list cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.listKey(name, page), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set mountain list failed: %w", err)
	}
	return nil
}

func (c *MountainCache) detailKey(mountainID uint) string {
	return fmt.Sprintf("mountain:detail:%d", mountainID)
}

func (c *MountainCache) listKey(name string, page int) string {
	return fmt.Sprintf("mountain:list:%s:%d", name, page)
}
