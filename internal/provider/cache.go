package provider

import (
	"crypto/sha256"
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
)

// Cache stores raw upstream responses so a session reload does not hit the
// network again. Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, data []byte) error
}

// FilesystemCache keeps one file per cached response under dir, named by the
// hash of the request key.
type FilesystemCache struct {
	dir string
}

func NewFilesystemCache(dir string) (*FilesystemCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &FilesystemCache{dir: dir}, nil
}

func (c *FilesystemCache) path(key string) string {
	sum := sha256.Sum256([]byte(key))

	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".json")
}

func (c *FilesystemCache) Get(key string) ([]byte, bool) {
	data, err := ioutil.ReadFile(c.path(key))

	if err != nil {
		return nil, false
	}

	return data, true
}

func (c *FilesystemCache) Put(key string, data []byte) error {
	return ioutil.WriteFile(c.path(key), data, 0644)
}

// NopCache disables caching.
type NopCache struct{}

func (NopCache) Get(string) ([]byte, bool) { return nil, false }

func (NopCache) Put(string, []byte) error { return nil }
