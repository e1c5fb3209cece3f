package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/base/metrics"
	"github.com/x-xyz/traitkit/service/cache/provider"
)

type impl struct {
	name    string
	cache   *freecache.Cache
	metrics metrics.Service
}

// NewPrimitive creates an in-process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{
		name:    name,
		cache:   freecache.NewCache(sizeMB * 1024 * 1024),
		metrics: metrics.New("cache"),
	}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		im.metrics.BumpSum("miss", 1, "name", im.name)
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.GetWithExpiration failed")
		return nil, 0, err
	}
	im.metrics.BumpSum("hit", 1, "name", im.name)
	return val, remaining(ttl), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, expireSeconds(ttl)); err != nil {
		// freecache rejects entries larger than 1/1024 of its size
		c.WithFields(log.Fields{
			"err":  err,
			"key":  key,
			"size": len(value),
		}).Warn("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

// expireSeconds rounds positive sub-second ttls up, freecache treats 0 as no expiry
func expireSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	s := int(ttl / time.Second)
	if ttl%time.Second != 0 {
		s++
	}
	return s
}

// remaining converts the absolute unix expiry freecache returns
func remaining(expireAt uint32) time.Duration {
	if expireAt == 0 {
		return 0
	}
	d := time.Until(time.Unix(int64(expireAt), 0))
	if d < 0 {
		return 0
	}
	return d
}
