package primitive

import (
	"strconv"
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/service/cache/provider"
)

type impl struct {
	name   string
	cache  *freecache.Cache
	maxTtl time.Duration
}

type Option func(*impl)

// WithMaxTtl caps the ttl of every entry, including entries set without one.
// Other processes can't evict this cache, so the cap bounds how long a
// deleted shared entry is still served from here.
func WithMaxTtl(maxTtl time.Duration) Option {
	return func(im *impl) {
		im.maxTtl = maxTtl
	}
}

// NewPrimitive creates an in-process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int, opts ...Option) provider.Provider {
	im := &impl{name: name, cache: freecache.NewCache(sizeMB * 1024 * 1024)}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// expireSeconds converts ttl to freecache seconds, where 0 means no expiry
func (im *impl) expireSeconds(ttl time.Duration) int {
	if im.maxTtl > 0 && (ttl <= 0 || ttl > im.maxTtl) {
		ttl = im.maxTtl
	}
	if ttl <= 0 {
		return 0
	}
	if secs := int(ttl.Seconds()); secs > 0 {
		return secs
	}
	return 1
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, time.Duration(0), err
	}
	if ttl > 0 {
		if remain := time.Until(time.Unix(int64(ttl), 0)); remain > 0 {
			return val, remain, nil
		}
	}
	return val, time.Duration(0), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, im.expireSeconds(ttl)); err != nil {
		// freecache refuses entries larger than 1/1024 of its size
		c.WithFields(map[string]interface{}{
			"err":   err,
			"key":   key,
			"cache": im.name,
			"size":  len(value),
		}).Warn("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error) {
	v, ttl, err := im.Get(c, key)
	if err != nil {
		return 0, time.Duration(0), err
	}

	i, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("strconv.ParseInt failed")
		return 0, time.Duration(0), err
	}

	nv := i + int64(val)
	return nv, ttl, im.Set(c, key, []byte(strconv.FormatInt(nv, 10)), ttl)
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
