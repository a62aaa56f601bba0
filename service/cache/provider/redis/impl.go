package redis

import (
	"time"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/service/cache/provider"
	"github.com/x-xyz/nftcard/service/redis"
)

type impl struct {
	redis redis.Service
}

func NewRedis(redis redis.Service) provider.Provider {
	return &impl{redis}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := im.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		return nil, time.Duration(0), err
	}

	ttl, err := im.redis.TTL(c, key)
	switch err {
	case nil:
		return val, time.Duration(ttl) * time.Second, nil
	case redis.ErrNoTTL:
		return val, time.Duration(0), nil
	case redis.ErrNotFound:
		// expired between GET and TTL
		return nil, time.Duration(0), provider.ErrNotFound
	}
	return nil, time.Duration(0), err
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	return im.redis.Set(c, key, value, ttl)
}

func (im *impl) Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error) {
	// to perform same behavior with local cache
	if exists, err := im.redis.Exists(c, key); err != nil {
		return 0, time.Duration(0), err
	} else if !exists {
		return 0, time.Duration(0), provider.ErrNotFound
	} else if res, err := im.redis.Incrby(c, key, val); err != nil {
		return 0, time.Duration(0), err
	} else if ttl, err := im.redis.TTL(c, key); err == redis.ErrNoTTL {
		return res, time.Duration(0), nil
	} else if err != nil {
		return 0, time.Duration(0), err
	} else {
		return res, time.Duration(ttl) * time.Second, nil
	}
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	_, err := im.redis.Del(c, key)
	return err
}
