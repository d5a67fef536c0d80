// pkg/model/cache.go
package model

import "path/filepath"

const (
	// DiskIconFile is the cached icon file name inside a package cache dir
	DiskIconFile = "icon.png"
	// DiskDataFile is the cached data file name inside a package cache dir
	DiskDataFile = "data.json"
)

// SupportsDiskCache reports if the package data and icon should be cached to disk
func SupportsDiskCache(p Package) bool {
	return p.Common().Installed && p.IsApplication()
}

// DiskCachePath returns the base cache path for the package type.
// An empty string means the package has no disk cache location.
func DiskCachePath(cacheDir string, p Package) string {
	typ := p.Type()
	if cacheDir == "" || typ == "" {
		return ""
	}
	return filepath.Join(cacheDir, typ)
}

// DiskIconPath returns where the package icon is cached, or "" when there is no cache path
func DiskIconPath(cacheDir string, p Package) string {
	if path := DiskCachePath(cacheDir, p); path != "" {
		return filepath.Join(path, DiskIconFile)
	}
	return ""
}

// DiskDataPath returns where the package data is cached, or "" when there is no cache path
func DiskDataPath(cacheDir string, p Package) string {
	if path := DiskCachePath(cacheDir, p); path != "" {
		return filepath.Join(path, DiskDataFile)
	}
	return ""
}
