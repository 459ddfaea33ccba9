package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a JSON-file backed list of records addressed by a string
// key. Every operation loads, mutates and rewrites the whole file; the
// registries are tiny (tens of entries) so this stays simple, and the
// temp-file rename keeps a crash from truncating the store.
type Collection[T any] struct {
	path string
	key  func(T) string
	mu   sync.Mutex
}

// NewCollection creates a collection stored at path, keyed by the given
// function.
func NewCollection[T any](path string, key func(T) string) *Collection[T] {
	return &Collection[T]{path: path, key: key}
}

// Load reads all records. A missing file is an empty collection; a
// corrupt file is logged and treated as empty rather than blocking use.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[WARN] store: %s is corrupt, treating as empty: %v", c.path, err)
		return nil, nil
	}
	return items, nil
}

// Save replaces the collection contents.
func (c *Collection[T]) Save(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(items)
}

func (c *Collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", c.path, err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// AddUnique appends the item unless a record with the same key already
// exists.
func (c *Collection[T]) AddUnique(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	k := c.key(item)
	for _, existing := range items {
		if c.key(existing) == k {
			return nil
		}
	}
	return c.save(append(items, item))
}

// Upsert replaces the record with the same key, or appends when absent.
func (c *Collection[T]) Upsert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	k := c.key(item)
	for i, existing := range items {
		if c.key(existing) == k {
			items[i] = item
			return c.save(items)
		}
	}
	return c.save(append(items, item))
}

// RemoveByKey drops every record with the given key. Removing an absent
// key is not an error.
func (c *Collection[T]) RemoveByKey(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if c.key(item) != key {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return c.save(kept)
}

// Find returns the record with the given key, if present.
func (c *Collection[T]) Find(key string) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	items, err := c.load()
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if c.key(item) == key {
			return item, true, nil
		}
	}
	return zero, false, nil
}
