package cache

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto"
)

// ScheduleCache holds encoded responses of previously computed schedules.
// A nil *ScheduleCache is valid and never hits.
type ScheduleCache struct {
	cache *ristretto.Cache
}

func NewScheduleCache(numCounters, maxCost int64) (*ScheduleCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost, // bytes of encoded responses
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ScheduleCache{cache: cache}, nil
}

// Key hashes the route name together with the request body.
func Key(route string, request any) (uint64, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return 0, err
	}
	digest := xxhash.New()
	_, _ = digest.WriteString(route)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.Write(body)
	return digest.Sum64(), nil
}

func (c *ScheduleCache) Get(key uint64) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	value, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	body, ok := value.([]byte)
	return body, ok
}

func (c *ScheduleCache) Set(key uint64, body []byte) {
	if c == nil {
		return
	}
	c.cache.Set(key, body, int64(len(body)))
}

// Wait blocks until buffered writes are applied.
func (c *ScheduleCache) Wait() {
	if c == nil {
		return
	}
	c.cache.Wait()
}

func (c *ScheduleCache) Close() {
	if c == nil {
		return
	}
	c.cache.Close()
}
