package blocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

const cacheKeyPrefix = "template-blocks::"

// Cache keeps assembled blocks per template id for ttl.
// Edits to a template become visible once the entry expires or is invalidated.
type Cache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewCache(sizeMB int, ttl time.Duration) *Cache {
	megabyte := 1024 * 1024
	return &Cache{
		cache: freecache.NewCache(sizeMB * megabyte),
		ttl:   ttl,
	}
}

// Enabled reports whether entries are kept at all (ttl > 0).
func (c *Cache) Enabled() bool {
	return c != nil && c.ttl > 0
}

func (c *Cache) Get(templateID string) ([]NormalizedBlock, bool, error) {
	if !c.Enabled() {
		return nil, false, nil
	}

	cached, err := c.cache.Get([]byte(cacheKeyPrefix + templateID))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var assembled []NormalizedBlock
	if err := json.Unmarshal(cached, &assembled); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached blocks for template %s: %w", templateID, err)
	}
	return assembled, true, nil
}

func (c *Cache) Set(templateID string, assembled []NormalizedBlock) error {
	if !c.Enabled() {
		return nil
	}

	assembledJson, err := json.Marshal(assembled)
	if err != nil {
		return fmt.Errorf("marshal blocks for template %s: %w", templateID, err)
	}

	expireSeconds := int(c.ttl.Seconds())
	if expireSeconds < 1 {
		expireSeconds = 1
	}
	return c.cache.Set([]byte(cacheKeyPrefix+templateID), assembledJson, expireSeconds)
}

func (c *Cache) Invalidate(templateID string) {
	if !c.Enabled() {
		return
	}
	c.cache.Del([]byte(cacheKeyPrefix + templateID))
}
