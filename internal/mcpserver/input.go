package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oaskit/oaspath/codec"
	"github.com/oaskit/oaspath/oas"
)

// itemInput represents the two ways a path item document can be provided.
// Exactly one of File or Content must be set.
type itemInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a path item file on disk (.json\\, .yaml or .yml)"`
	Content string `json:"content,omitempty" jsonschema:"Inline path item document (JSON or YAML)"`
}

// cacheEntry holds a decoded path item with LRU ordering and TTL expiry.
type cacheEntry struct {
	item      *oas.PathItem
	format    codec.Format
	insertAt  time.Time
	expiresAt time.Time
}

// itemCacheStore is a session-scoped cache of decoded path items.
// File inputs are keyed by (absolutePath, modTime); content inputs by a
// SHA-256 hash. Cached items are cloned on the way out.
type itemCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	maxSize int
}

var itemCache = &itemCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached entry or nil. Expired entries are lazily removed.
func (c *itemCacheStore) get(key string) *cacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		e.insertAt = time.Now()
		return e
	}
	return nil
}

// put stores an entry, evicting the oldest one if at capacity.
// A zero ttl means the entry does not expire.
func (c *itemCacheStore) put(key string, item *oas.PathItem, format codec.Format, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{item: item, format: format, insertAt: now}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry
}

// reset clears all cached entries. Used in tests.
func (c *itemCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *itemCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key for the input, or "" when it cannot be cached.
func (in itemInput) cacheKey() string {
	switch {
	case in.File != "":
		absPath, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case in.Content != "":
		h := sha256.Sum256([]byte(in.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve decodes the path item from whichever input was provided and
// reports the format it was read as.
func (in itemInput) resolve() (*oas.PathItem, codec.Format, error) {
	if (in.File == "") == (in.Content == "") {
		return nil, codec.FormatUnknown, fmt.Errorf("exactly one of file or content must be provided")
	}

	var key string
	if cfg.CacheEnabled {
		key = in.cacheKey()
	}
	if key != "" {
		if e := itemCache.get(key); e != nil {
			return e.item.Clone(), e.format, nil
		}
	}

	data, source, err := in.read()
	if err != nil {
		return nil, codec.FormatUnknown, err
	}
	format := codec.DetectFormatFromPath(in.File)
	if format == codec.FormatUnknown {
		format = codec.DetectFormatFromContent(data)
	}
	item, err := codec.DecodePathItem(data,
		codec.WithMaxSize(cfg.MaxInputSize),
		codec.WithSourceName(source),
		codec.WithFormat(format),
	)
	if err != nil {
		return nil, codec.FormatUnknown, err
	}

	if key != "" {
		ttl := time.Duration(0)
		if in.File != "" {
			ttl = cfg.CacheFileTTL
		}
		itemCache.put(key, item.Clone(), format, ttl)
	}
	return item, format, nil
}

// read returns the raw document bytes and a name for errors.
func (in itemInput) read() ([]byte, string, error) {
	if in.Content != "" {
		if int64(len(in.Content)) > cfg.MaxInputSize {
			return nil, "", fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; set OASPATH_MAX_INPUT_SIZE to increase",
				len(in.Content), cfg.MaxInputSize)
		}
		return []byte(in.Content), "content", nil
	}
	f, err := os.Open(in.File)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = f.Close() }()
	data, err := codec.ReadAll(f, codec.WithMaxSize(cfg.MaxInputSize), codec.WithSourceName(in.File))
	if err != nil {
		return nil, "", err
	}
	return data, in.File, nil
}
