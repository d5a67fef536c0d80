package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ Package = (*testApp)(nil)

func TestBaseDefaults(t *testing.T) {
	tests := []struct {
		name            string
		installed       bool
		update          bool
		wantUninstall   bool
		wantInstall     bool
		wantUpdate      bool
		wantScreenshots bool
	}{
		{name: "not installed", wantInstall: true, wantScreenshots: true},
		{name: "not installed with update flag", update: true, wantInstall: true, wantScreenshots: true},
		{name: "installed", installed: true, wantUninstall: true},
		{name: "installed with update", installed: true, update: true, wantUninstall: true, wantUpdate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp("org.test.App", "App")
			app.Installed = tt.installed
			app.Update = tt.update

			assert.Equal(t, tt.wantUninstall, app.CanBeUninstalled())
			assert.Equal(t, tt.wantInstall, app.CanBeInstalled())
			assert.Equal(t, tt.wantUpdate, app.CanBeUpdated())
			assert.Equal(t, tt.wantScreenshots, app.HasScreenshots())
		})
	}
}

func TestBaseFixedDefaults(t *testing.T) {
	app := newTestApp("org.test.App", "App")

	assert.False(t, app.IsUpdateIgnored())
	assert.False(t, app.SupportsIgnoredUpdates())
	assert.False(t, app.IsTrustable())
	assert.Nil(t, app.CustomActions())
	assert.Empty(t, app.UpdateTip())
	assert.Equal(t, "App", app.NameTooltip())
	assert.Equal(t, "App", app.DisplayName())
}

func TestNewBase(t *testing.T) {
	b := NewBase("flatpak")

	assert.Equal(t, StatusReady, b.Status)
	assert.Equal(t, "flatpak", b.GemName)
	assert.Nil(t, b.Size)
	assert.False(t, b.IsLoading())

	b.Status = StatusLoadingData
	assert.True(t, b.IsLoading())
	assert.Same(t, &b, b.Common())
}

func TestPackageStatusString(t *testing.T) {
	assert.Equal(t, "READY", StatusReady.String())
	assert.Equal(t, "LOADING_DATA", StatusLoadingData.String())
	assert.Equal(t, "PackageStatus(7)", PackageStatus(7).String())
}

func TestDescribe(t *testing.T) {
	app := newTestApp("org.test.App", "App")

	assert.Equal(t, "testApp (id=org.test.App, name=App)", Describe(app))
	assert.Equal(t, "<nil>", Describe(nil))
}

func TestDiskCache(t *testing.T) {
	cacheDir := filepath.Join("/home/user/.cache", "bauh")

	t.Run("paths follow the package type", func(t *testing.T) {
		app := newTestApp("org.test.App", "App")

		assert.Equal(t, filepath.Join(cacheDir, "testapp"), DiskCachePath(cacheDir, app))
		assert.Equal(t, filepath.Join(cacheDir, "testapp", "icon.png"), DiskIconPath(cacheDir, app))
		assert.Equal(t, filepath.Join(cacheDir, "testapp", "data.json"), DiskDataPath(cacheDir, app))
	})

	t.Run("no type means no cache location", func(t *testing.T) {
		app := newTestApp("org.test.App", "App")
		app.typ = ""

		assert.Empty(t, DiskCachePath(cacheDir, app))
		assert.Empty(t, DiskIconPath(cacheDir, app))
		assert.Empty(t, DiskDataPath(cacheDir, app))
	})

	t.Run("support requires an installed application", func(t *testing.T) {
		app := newTestApp("org.test.App", "App")
		assert.False(t, SupportsDiskCache(app))

		app.Installed = true
		assert.True(t, SupportsDiskCache(app))

		app.application = false
		assert.False(t, SupportsDiskCache(app))
	})
}

func TestCachedDataRoundTrip(t *testing.T) {
	src := newTestApp("org.test.App", "App")
	src.IconURL = "https://example.org/icon.png"

	dst := newTestApp("org.test.App", "App")
	dst.FillCachedData(src.DataToCache())

	assert.Equal(t, src.IconURL, dst.IconURL)
}
