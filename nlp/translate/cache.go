package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/oarkflow/squealx"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS translations (
	hash TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	target TEXT NOT NULL,
	translated TEXT NOT NULL,
	created_at INTEGER NOT NULL
)`

// Cache memoizes translations in SQLite, keyed by a hash of the language
// pair and the source text. The source text itself is not stored.
type Cache struct {
	// OnHit, when set, is called for every lookup served from the cache.
	OnHit func()
	// Logger receives write failures; slog.Default is used when nil.
	Logger *slog.Logger

	db     *squealx.DB
	hits   atomic.Int64
	misses atomic.Int64
}

type cachedRow struct {
	Translated string `db:"translated"`
}

// OpenCache opens (and creates) the cache database at dsn.
func OpenCache(dsn string) (*Cache, error) {
	db, err := squealx.Open("sqlite", dsn, "translations")
	if err != nil {
		return nil, fmt.Errorf("open translation cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping translation cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create translation cache: %w", err)
	}
	return &Cache{db: db}, nil
}

func cacheKey(from, to, text string) string {
	return strconv.FormatUint(xxhash.Sum64String(from+"\x00"+to+"\x00"+text), 16)
}

// Get returns the cached translation, if any.
func (c *Cache) Get(from, to, text string) (string, bool, error) {
	var rows []cachedRow
	err := c.db.Select(&rows, "SELECT translated FROM translations WHERE hash = :hash", map[string]any{
		"hash": cacheKey(from, to, text),
	})
	if err != nil {
		return "", false, fmt.Errorf("read translation cache: %w", err)
	}
	if len(rows) == 0 {
		c.misses.Add(1)
		return "", false, nil
	}
	c.hits.Add(1)
	if c.OnHit != nil {
		c.OnHit()
	}
	return rows[0].Translated, true, nil
}

// Put stores a translation, replacing any previous entry.
func (c *Cache) Put(from, to, text, translated string) error {
	_, err := c.db.NamedExec(
		"INSERT OR REPLACE INTO translations (hash, source, target, translated, created_at) VALUES (:hash, :source, :target, :translated, :created_at)",
		map[string]any{
			"hash":       cacheKey(from, to, text),
			"source":     from,
			"target":     to,
			"translated": translated,
			"created_at": time.Now().Unix(),
		})
	if err != nil {
		return fmt.Errorf("write translation cache: %w", err)
	}
	return nil
}

// Hits reports how many lookups were served from the cache.
func (c *Cache) Hits() int64 { return c.hits.Load() }

// Misses reports how many lookups missed the cache.
func (c *Cache) Misses() int64 { return c.misses.Load() }

func (c *Cache) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Cache) Close() error {
	return c.db.Close()
}

type cached struct {
	next  Translator
	cache *Cache
}

// Cached wraps next so successful translations are served from cache.
// Cache errors never fail a translation.
func Cached(next Translator, cache *Cache) Translator {
	if cache == nil {
		return next
	}
	return &cached{next: next, cache: cache}
}

func (c *cached) Translate(ctx context.Context, text, from, to string) (string, error) {
	if out, ok, err := c.cache.Get(from, to, text); err == nil && ok {
		return out, nil
	}
	out, err := c.next.Translate(ctx, text, from, to)
	if err != nil {
		return "", err
	}
	if err := c.cache.Put(from, to, text, out); err != nil {
		c.cache.logger().Warn("translation cache write failed", "from", from, "to", to, "error", err)
	}
	return out, nil
}
