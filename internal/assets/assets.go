// Package assets handles mesh asset lookup, decoding and caching.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/meshload/internal/config"
	"github.com/Faultbox/meshload/internal/logger"
	"github.com/Faultbox/meshload/pkg/formats"
	"github.com/Faultbox/meshload/pkg/math"
	"github.com/Faultbox/meshload/pkg/mesh"
)

// ErrNotFound is returned when no asset directory contains the requested file.
var ErrNotFound = errors.New("asset not found")

// Mesh is a decoded, render-ready mesh asset.
type Mesh struct {
	Name    string
	Path    string
	Buffers *mesh.Buffers
	Meta    formats.OBJMetadata
	Bounds  mesh.Bounds
}

// Manager resolves mesh names against a list of directories and decodes
// them with a shared import transform.
type Manager struct {
	dirs      []string
	transform math.Mat4
	opts      formats.OBJOptions
	cache     *Cache
	mu        sync.RWMutex
}

// NewManager creates a manager using the loader settings from cfg.
func NewManager(cfg config.LoaderConfig) *Manager {
	m := &Manager{
		transform: cfg.Transform(),
		opts:      cfg.Options(),
		cache:     NewCache(),
	}
	for _, dir := range cfg.AssetDirs {
		if err := m.AddDir(dir); err != nil {
			logger.Warn("skipping asset directory", zap.String("dir", dir), zap.Error(err))
		}
	}
	return m
}

// AddDir adds a search directory.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("opening asset directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("opening asset directory %s: not a directory", dir)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()

	return nil
}

// Resolve returns the on-disk path for name. Absolute paths are used as is.
func (m *Manager) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return name, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	clean := filepath.Clean(name)
	for i := len(m.dirs) - 1; i >= 0; i-- {
		path := filepath.Join(m.dirs[i], clean)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// LoadMesh returns the decoded mesh for name, decoding it on first use.
func (m *Manager) LoadMesh(name string) (*Mesh, error) {
	key := filepath.ToSlash(filepath.Clean(name))
	if cached, ok := m.cache.Get(key); ok {
		return cached, nil
	}

	path, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}

	loaded := &Mesh{
		Name:    key,
		Path:    path,
		Buffers: &mesh.Buffers{},
	}
	if err := formats.DecodeOBJFile(path, m.transform, loaded.Buffers, &loaded.Meta, m.opts); err != nil {
		logger.Error("mesh decode failed", zap.String("mesh", key), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	loaded.Bounds = loaded.Buffers.Bounds()

	logger.Info("mesh decoded", MetaFields(key, loaded.Meta)...)

	m.cache.Set(key, loaded)
	return loaded, nil
}

// MetaFields returns decode statistics as zap fields.
func MetaFields(name string, meta formats.OBJMetadata) []zap.Field {
	return []zap.Field{
		zap.String("mesh", name),
		zap.Int("positions", meta.Positions),
		zap.Int("uvs", meta.UVs),
		zap.Int("normals", meta.Normals),
		zap.Int("faces", meta.Faces),
		zap.Int("triangles", meta.Triangles),
		zap.Int("vertices", meta.Vertices),
		zap.Int("indices", meta.Indices),
		zap.Duration("parse_time", meta.ParseTime),
	}
}

// CacheStats returns cache hit/miss counts.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all cached meshes and search directories.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dirs = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for decoded meshes.
type Cache struct {
	data map[string]*Mesh
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*Mesh),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*Mesh, bool) {
	// Stats are written, so this takes the write lock.
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return m, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, m *Mesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = m
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*Mesh)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
