// pkg/paths/paths.go

// Package paths computes the filesystem locations used by bauh.
// System wide locations are used when running as root, home relative ones otherwise.
package paths

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under every base location
const AppName = "bauh"

// Root owned base directories
const (
	SystemCacheRoot     = "/var/cache"
	SystemConfigRoot    = "/etc"
	SystemAutostartDir  = "/etc/xdg/autostart"
	TempRoot            = "/tmp"
	logsDirName         = "logs"
	themesDirName       = "themes"
	applicationsDirName = "applications"
	autostartDirName    = "autostart"
)

// Identity is the process identity the paths are derived from
type Identity struct {
	Root bool   // Effective user is root
	Home string // Home directory
	User string // Login name
}

// Paths holds every location bauh reads or writes
type Paths struct {
	CacheDir          string // Package data cache
	ConfigDir         string // Configuration files
	UserThemesDir     string // User installed themes
	DesktopEntriesDir string // Desktop entries (.desktop files)
	TempDir           string // Per user temporary directory
	LogsDir           string // Log files
	AutostartDir      string // Autostart entries
}

// Resolve computes the paths of app for the given identity
func Resolve(app string, id Identity) Paths {
	home := id.Home
	local := filepath.Join(home, ".local", "share")
	temp := filepath.Join(TempRoot, fmt.Sprintf("%s@%s", app, id.User))

	p := Paths{
		UserThemesDir:     filepath.Join(local, app, themesDirName),
		DesktopEntriesDir: filepath.Join(local, applicationsDirName),
		TempDir:           temp,
		LogsDir:           filepath.Join(temp, logsDirName),
	}

	if id.Root {
		p.CacheDir = filepath.Join(SystemCacheRoot, app)
		p.ConfigDir = filepath.Join(SystemConfigRoot, app)
		p.AutostartDir = SystemAutostartDir
	} else {
		p.CacheDir = filepath.Join(home, ".cache", app)
		p.ConfigDir = filepath.Join(home, ".config", app)
		p.AutostartDir = filepath.Join(home, ".config", autostartDirName)
	}

	return p
}

// IsRoot reports if the process runs with root as effective user
func IsRoot() bool {
	return os.Geteuid() == 0
}

// CurrentIdentity reads the identity of the running process
func CurrentIdentity() (Identity, error) {
	id := Identity{
		Root: IsRoot(),
		Home: xdg.Home,
	}
	if id.Home == "" {
		return Identity{}, fmt.Errorf("determining home directory")
	}

	if u, err := user.Current(); err == nil {
		id.User = u.Username
	} else if name := os.Getenv("USER"); name != "" {
		id.User = name
	} else {
		return Identity{}, fmt.Errorf("determining user name: %w", err)
	}

	return id, nil
}

var (
	defaultOnce  sync.Once
	defaultPaths Paths
	defaultErr   error
)

// Default returns the paths for the running process, resolved once
func Default() (Paths, error) {
	defaultOnce.Do(func() {
		id, err := CurrentIdentity()
		if err != nil {
			defaultErr = err
			return
		}
		defaultPaths = Resolve(AppName, id)
	})
	return defaultPaths, defaultErr
}

// ConfigFile returns the path of the main configuration file
func (p Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// LogFile returns the path of the main log file
func (p Paths) LogFile() string {
	return filepath.Join(p.LogsDir, AppName+".log")
}
