// Package fetch resolves corpus sources that may be local paths or remote
// URLs. Remote files are downloaded once into a cache directory so
// repeated runs hit the local copy.
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// CachedPath resolves source to a local file path. Local paths are
// returned after a stat check; http(s) URLs are downloaded into cacheDir
// (default: the user cache dir under "reftag"), keyed by the sha256 of the
// URL and keeping the original extension so format detection still works.
func CachedPath(ctx context.Context, source, cacheDir string) (string, error) {
	if !isRemote(source) {
		if _, err := os.Stat(source); err != nil {
			return "", fmt.Errorf("stat corpus file: %w", err)
		}
		return source, nil
	}

	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("resolve cache dir: %w", err)
		}
		cacheDir = filepath.Join(base, "reftag")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	sum := sha256.Sum256([]byte(source))
	local := filepath.Join(cacheDir, hex.EncodeToString(sum[:])+sourceExt(source))

	if _, err := os.Stat(local); err == nil {
		return local, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat cached file: %w", err)
	}

	if err := download(ctx, source, local); err != nil {
		return "", err
	}
	return local, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func sourceExt(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	return path.Ext(u.Path)
}

// download fetches srcURL into outPath via a temp file and an atomic
// rename, so a cancelled run never leaves a half-written cache entry.
func download(ctx context.Context, srcURL, outPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download corpus: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download corpus %s: %s", srcURL, resp.Status)
	}

	tmp := outPath + ".tmp"
	fh, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(fh, resp.Body); err != nil {
		_ = fh.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := fh.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("move temp file into place: %w", err)
	}

	return nil
}
