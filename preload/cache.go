package preload

import (
	"crypto/sha1"
	"encoding/hex"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

// Store is the on-disk layer of the cache. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// OpenDiskStore opens the per-user data directory used to keep warmed
// images between launches.
func OpenDiskStore(appName string) (*gdata.Manager, error) {
	return gdata.Open(gdata.Config{
		AppName: appName,
	})
}

// Cache keeps fetched payloads in memory and, when a Store is attached,
// on disk. Disk errors are logged and otherwise ignored: a cold cache only
// costs a download.
type Cache struct {
	mu    sync.Mutex
	mem   map[string][]byte
	store Store
}

// NewCache returns a cache; store may be nil for memory only.
func NewCache(store Store) *Cache {
	return &Cache{
		mem:   make(map[string][]byte),
		store: store,
	}
}

func (c *Cache) Get(uri string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if data, ok := c.mem[uri]; ok {
		return data, true
	}
	if c.store == nil {
		return nil, false
	}
	data, err := c.store.LoadItem(cacheKey(uri))
	if err != nil {
		log.Printf("[preload] cache read %s: %v", uri, err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}
	c.mem[uri] = data
	return data, true
}

func (c *Cache) Put(uri string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mem[uri] = data
	if c.store == nil {
		return
	}
	if err := c.store.SaveItem(cacheKey(uri), data); err != nil {
		log.Printf("[preload] cache write %s: %v", uri, err)
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.mem)
}

func cacheKey(uri string) string {
	sum := sha1.Sum([]byte(uri))
	return "img_" + hex.EncodeToString(sum[:])
}
