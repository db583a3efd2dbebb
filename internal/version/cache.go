package version

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/loomcms/cli/internal/config"
)

const (
	// UpdateCheckInterval is how often we check for updates
	UpdateCheckInterval = 12 * time.Hour
	// UpdateCheckCacheFile is the name of the cache file
	UpdateCheckCacheFile = "loom-update-check.json"
)

// UpdateCheckCache stores the last update check information
type UpdateCheckCache struct {
	LastCheckTime time.Time `json:"last_check_time"`
	LatestVersion string    `json:"latest_version,omitempty"`
	UpdateURL     string    `json:"update_url,omitempty"`
}

// getCacheFilePath returns the path to the update check cache file
func getCacheFilePath() (string, error) {
	loomDir, err := config.GetLoomConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(loomDir, UpdateCheckCacheFile), nil
}

// readCache reads the update check cache from disk
func readCache() (*UpdateCheckCache, error) {
	cachePath, err := getCacheFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			// Cache doesn't exist yet, return empty cache
			return &UpdateCheckCache{}, nil
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var cache UpdateCheckCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache: %w", err)
	}

	return &cache, nil
}

// writeCache writes the update check cache to disk
func writeCache(cache *UpdateCheckCache) error {
	cachePath, err := getCacheFilePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	return nil
}

// shouldCheckForUpdate returns true if it's been more than
// UpdateCheckInterval since the last check
func shouldCheckForUpdate() bool {
	cache, err := readCache()
	if err != nil {
		// If we can't read cache, check anyway
		return true
	}

	if cache.LastCheckTime.IsZero() {
		return true
	}

	return time.Since(cache.LastCheckTime) >= UpdateCheckInterval
}

// getCachedUpdateInfo returns cached update information if available
func getCachedUpdateInfo() (*GitHubRelease, bool) {
	cache, err := readCache()
	if err != nil {
		return nil, false
	}

	if cache.LatestVersion != "" && time.Since(cache.LastCheckTime) < UpdateCheckInterval {
		comparison, err := CompareVersions(Version, cache.LatestVersion)
		if err == nil && comparison < 0 {
			return &GitHubRelease{
				TagName: cache.LatestVersion,
				URL:     cache.UpdateURL,
			}, true
		}
	}

	return nil, false
}

// cacheUpdateInfo stores the update check result in the cache
func cacheUpdateInfo(release *GitHubRelease) error {
	cache := &UpdateCheckCache{
		LastCheckTime: time.Now(),
	}

	if release != nil {
		cache.LatestVersion = release.TagName
		cache.UpdateURL = release.URL
	}

	return writeCache(cache)
}
