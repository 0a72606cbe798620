package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// specCache is the incremental-generation manifest: a mapping from entity
// name to the content hash of the spec its artifacts were last generated
// from. An unchanged hash skips re-emission for that entity.
type specCache struct {
	path string

	mu      sync.Mutex
	entries map[string]string
	dirty   bool
}

// manifest is the YAML form of the cache file.
type manifest struct {
	Entries map[string]string `yaml:"entries"`
}

// loadSpecCache reads the manifest at path. A missing file yields an
// empty cache; an empty path yields a cache that never hits.
func loadSpecCache(path string) (*specCache, error) {
	c := &specCache{path: path, entries: make(map[string]string)}
	if path == "" {
		return c, nil
	}
	buf, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("facetc: reading cache manifest %q: %w", path, err)
	}
	m := manifest{}
	if err := yaml.Unmarshal(buf, &m); err != nil {
		return nil, fmt.Errorf("facetc: parsing cache manifest %q: %w", path, err)
	}
	if m.Entries != nil {
		c.entries = m.Entries
	}
	return c, nil
}

// UpToDate reports whether the entity's artifacts were last generated
// from a spec with the given hash.
func (c *specCache) UpToDate(entity, hash string) bool {
	if c.path == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[entity] == hash
}

// Record stores the hash the entity's artifacts were generated from.
func (c *specCache) Record(entity, hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[entity] != hash {
		c.entries[entity] = hash
		c.dirty = true
	}
}

// Flush writes the manifest back to disk if it changed.
func (c *specCache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.path == "" || !c.dirty {
		return nil
	}
	buf, err := yaml.Marshal(manifest{Entries: c.entries})
	if err != nil {
		return fmt.Errorf("facetc: encoding cache manifest: %w", err)
	}
	if err := os.WriteFile(c.path, buf, 0o644); err != nil {
		return fmt.Errorf("facetc: writing cache manifest %q: %w", c.path, err)
	}
	c.dirty = false
	return nil
}
