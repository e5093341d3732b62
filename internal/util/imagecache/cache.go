// Package imagecache keeps downloaded remote images on disk so repeated
// extractions from the same URL skip the network.
package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/colorcraft/colorcraft/internal/security"
	httputil "github.com/colorcraft/colorcraft/internal/util/http"
)

// Cache stores remote image bodies under Dir, keyed by URL.
type Cache struct {
	Dir string
}

// DefaultDir returns the user cache directory for images.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", herr)
		}
		return filepath.Join(home, ".cache", "colorcraft", "images"), nil
	}
	return filepath.Join(cacheDir, "colorcraft", "images"), nil
}

// New returns a cache rooted at dir, or at DefaultDir when dir is empty.
func New(dir string) (*Cache, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &Cache{Dir: dir}, nil
}

// Key derives a stable file name for url: 32 hex characters of its SHA-256
// followed by the path extension, or ".img" when there is none.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	name := hex.EncodeToString(sum[:16])

	p := url
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	ext := strings.ToLower(path.Ext(p))
	if ext == "" || len(ext) > 5 || strings.Contains(ext, "/") {
		ext = ".img"
	}
	return name + ext
}

// Path returns where url is (or would be) cached.
func (c *Cache) Path(url string) string {
	return filepath.Join(c.Dir, Key(url))
}

// Fetch returns the cached body for url, downloading and storing it on a miss.
// The file is written through a temporary name so concurrent readers never
// see a partial image.
func (c *Cache) Fetch(ctx context.Context, url string, opts httputil.FetchOptions) ([]byte, error) {
	if err := security.ValidateHTTPURL(url); err != nil {
		return nil, err
	}

	cached := c.Path(url)
	if data, err := os.ReadFile(cached); err == nil { // #nosec G304 - path derived from a hash under the cache dir
		return data, nil
	}

	data, err := httputil.Fetch(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil { // #nosec G301 - cache directory needs standard permissions
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmp, err := os.CreateTemp(c.Dir, ".download-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := os.Rename(tmp.Name(), cached); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to store cached image: %w", err)
	}
	return data, nil
}

// Clear removes every cached image.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cache directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.Dir, e.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", e.Name(), err)
		}
	}
	return nil
}
