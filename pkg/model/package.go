// pkg/model/package.go
package model

import (
	"fmt"
	"reflect"
)

// PackageStatus tells whether all package data is available
type PackageStatus int

const (
	// StatusReady means all package data is already filled
	StatusReady PackageStatus = 1
	// StatusLoadingData means some package data is being retrieved asynchronously
	StatusLoadingData PackageStatus = 2
)

func (s PackageStatus) String() string {
	switch s {
	case StatusReady:
		return "READY"
	case StatusLoadingData:
		return "LOADING_DATA"
	default:
		return fmt.Sprintf("PackageStatus(%d)", int(s))
	}
}

// Package is implemented by every package variant a gem exposes.
// Variants embed Base, which supplies the shared fields and the default
// behaviours, and implement the remaining capability methods themselves.
type Package interface {
	// Common returns the fields shared by all variants
	Common() *Base

	// HasHistory reports if the package has a commit history to show
	HasHistory() bool

	// HasInfo reports if the package has additional information to show
	HasInfo() bool

	CanBeDowngraded() bool

	// Type returns a string that represents the package type (e.g. "flatpak")
	Type() string

	// DefaultIconPath is used when the package icon could not (or will not) be retrieved
	DefaultIconPath() string

	// TypeIconPath returns the path of the package type icon
	TypeIconPath() string

	// IsApplication reports if the package is an application rather than a library/runtime
	IsApplication() bool

	// DataToCache returns the data that should be cached in disk / memory for quick access
	DataToCache() map[string]any

	// FillCachedData sets previously cached data on the package
	FillCachedData(data map[string]any)

	// CanBeRun reports whether the package can be launched by the user
	CanBeRun() bool

	// Publisher returns the package publisher / maintainer
	Publisher() string

	SupportsBackup() bool

	CanBeUninstalled() bool
	CanBeInstalled() bool
	CanBeUpdated() bool
	IsUpdateIgnored() bool
	SupportsIgnoredUpdates() bool
	IsTrustable() bool
	CustomActions() []CustomSoftwareAction
	HasScreenshots() bool
	NameTooltip() string
	DisplayName() string
	UpdateTip() string
}

// Base holds the fields every package variant carries
type Base struct {
	ID            string        // Unique identifier within the gem
	Name          string        // Package name
	Description   string        // Package description
	Version       string        // Installed (or available) version
	LatestVersion string        // Latest known version
	IconURL       string        // Icon location, either a URL or a local path
	Status        PackageStatus // READY or LOADING_DATA
	Installed     bool          // Whether the package is installed
	Update        bool          // Whether there is an update for the package
	Size          *int64        // Package size in bytes, nil when unknown
	Categories    []string      // e.g. video editor, web browser
	License       string        // License information
	GemName       string        // Gem (backend) that owns this package
}

// NewBase returns a Base owned by the given gem with status READY
func NewBase(gemName string) Base {
	return Base{
		Status:  StatusReady,
		GemName: gemName,
	}
}

// Common returns the shared fields
func (b *Base) Common() *Base {
	return b
}

func (b *Base) CanBeUninstalled() bool {
	return b.Installed
}

func (b *Base) CanBeInstalled() bool {
	return !b.Installed
}

// CanBeUpdated reports if the package is installed and has an update
func (b *Base) CanBeUpdated() bool {
	return b.Installed && b.Update
}

func (b *Base) IsUpdateIgnored() bool {
	return false
}

func (b *Base) SupportsIgnoredUpdates() bool {
	return false
}

// IsTrustable reports if the package is distributed by a trustable source
func (b *Base) IsTrustable() bool {
	return false
}

// CustomActions returns the extra actions the package supports, nil for none
func (b *Base) CustomActions() []CustomSoftwareAction {
	return nil
}

// HasScreenshots reports if there are screenshots to be displayed
func (b *Base) HasScreenshots() bool {
	return !b.Installed
}

// NameTooltip is the name shown on tooltips
func (b *Base) NameTooltip() string {
	return b.Name
}

// DisplayName is the name shown on package listings
func (b *Base) DisplayName() string {
	return b.Name
}

// UpdateTip returns a custom version update tooltip, empty for none
func (b *Base) UpdateTip() string {
	return ""
}

// IsLoading reports if asynchronous data loading is still pending
func (b *Base) IsLoading() bool {
	return b.Status == StatusLoadingData
}

// Describe returns a short representation in the form "Variant (id=..., name=...)"
func Describe(p Package) string {
	if p == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(p)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	c := p.Common()
	return fmt.Sprintf("%s (id=%s, name=%s)", t.Name(), c.ID, c.Name)
}
