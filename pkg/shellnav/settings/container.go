// Package settings persists application settings and data files.
//
// A Container is a flat set of string values stored in a TOML file, used for
// small preferences such as the requested theme. A Folder stores whole files,
// either JSON documents or raw bytes.
//
// Reads of missing keys and files are not errors: they yield the zero value.
package settings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
)

// Container holds string settings values, optionally backed by a TOML file.
// It is safe for concurrent use.
type Container struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

type document struct {
	Values map[string]string `toml:"values"`
}

// OpenContainer loads the settings stored at path. A missing file yields an
// empty container that creates the file on the first save. An empty path keeps
// the values in memory only.
func OpenContainer(path string) (*Container, error) {
	c := &Container{
		path:   path,
		values: make(map[string]string),
	}
	if path == "" {
		return c, nil
	}

	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("load settings %s: %w", path, err)
	}
	for k, v := range doc.Values {
		c.values[k] = v
	}
	return c, nil
}

// Path returns the backing file of the container, or "" for an in-memory container.
func (c *Container) Path() string {
	return c.path
}

// Value returns the raw value stored under key.
func (c *Container) Value(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the stored keys in lexical order.
func (c *Container) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SaveString stores value under key and writes the container to disk.
func (c *Container) SaveString(ctx context.Context, key, value string) error {
	if c == nil {
		return errdefs.NewArgumentError("settings")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return c.flush()
}

// Remove deletes key and writes the container to disk.
func (c *Container) Remove(ctx context.Context, key string) error {
	if c == nil {
		return errdefs.NewArgumentError("settings")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.values[key]; !ok {
		return nil
	}
	delete(c.values, key)
	return c.flush()
}

// flush writes the values to a temporary file and renames it over the
// container file. Callers hold c.mu.
func (c *Container) flush() error {
	if c.path == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(document{Values: c.values}); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*")
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Save stores value under key as JSON.
func Save[T any](ctx context.Context, c *Container, key string, value T) error {
	if c == nil {
		return errdefs.NewArgumentError("settings")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %q: %w", key, err)
	}
	return c.SaveString(ctx, key, string(data))
}

// Read returns the JSON value stored under key, or the zero value of T when
// the key is absent.
func Read[T any](ctx context.Context, c *Container, key string) (T, error) {
	var value T
	if c == nil {
		return value, errdefs.NewArgumentError("settings")
	}
	if err := ctx.Err(); err != nil {
		return value, err
	}

	raw, ok := c.Value(key)
	if !ok {
		return value, nil
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return value, fmt.Errorf("decode setting %q: %w", key, err)
	}
	return value, nil
}
