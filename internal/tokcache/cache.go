package tokcache

import (
	"sync"
	"sync/atomic"

	"dicer/internal/lexer"
	"dicer/internal/source"
)

// Key identifies a cached token stream: the same bytes lexed with the same options.
type Key struct {
	Hash           [32]byte
	SkipTrivia     bool
	MaxTokenLength int
}

// KeyOf builds the cache key for file lexed with opts.
func KeyOf(file *source.File, opts lexer.Options) Key {
	return Key{Hash: file.Hash, SkipTrivia: opts.SkipTrivia, MaxTokenLength: opts.MaxTokenLength}
}

// Cache provides an in-memory store of encoded token snapshots.
// Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key][]byte

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates a Cache with the given capacity hint.
func New(capHint int) *Cache {
	return &Cache{entries: make(map[Key][]byte, capHint)}
}

// Get looks up a snapshot for file and decodes it. A snapshot that fails to
// decode is dropped and reported as a miss.
func (c *Cache) Get(file *source.File, opts lexer.Options) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	key := KeyOf(file, opts)
	c.mu.RLock()
	data, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		c.misses.Add(1)
		return Entry{}, false
	}

	e, err := Decode(file, data)
	if err != nil {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.misses.Add(1)
		return Entry{}, false
	}
	c.hits.Add(1)
	return e, true
}

// Put encodes and stores e for file.
func (c *Cache) Put(file *source.File, opts lexer.Options, e Entry) error {
	if c == nil {
		return nil
	}
	data, err := Encode(file, e)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[KeyOf(file, opts)] = data
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored snapshots.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

// Drop removes every snapshot.
func (c *Cache) Drop() {
	if c == nil {
		return
	}
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()
}
