// bauh.go
package bauh

import (
	"context"
	"fmt"
	"time"

	"github.com/bauh-project/bauh/pkg/actions"
	"github.com/bauh-project/bauh/pkg/config"
	"github.com/bauh-project/bauh/pkg/enrich"
	"github.com/bauh-project/bauh/pkg/logging"
	"github.com/bauh-project/bauh/pkg/model"
	"github.com/bauh-project/bauh/pkg/paths"
	"github.com/bauh-project/bauh/pkg/platform"
	"github.com/bauh-project/bauh/pkg/registry"
)

// Version of bauh
const Version = "0.10.7"

// Re-export model types for convenience
type (
	Package              = model.Package
	Base                 = model.Base
	PackageStatus        = model.PackageStatus
	CustomSoftwareAction = model.CustomSoftwareAction
	PackageUpdate        = model.PackageUpdate
	PackageHistory       = model.PackageHistory
	SuggestionPriority   = model.SuggestionPriority
	PackageSuggestion    = model.PackageSuggestion
	SoftwareManager      = model.SoftwareManager
	ActionFunc           = actions.ActionFunc
	ActionRequest        = actions.Request
	ActionResult         = actions.Result
	Watcher              = actions.Watcher
	Paths                = paths.Paths
	Config               = config.Config
)

// Re-export model constants
const (
	StatusReady       = model.StatusReady
	StatusLoadingData = model.StatusLoadingData
	PriorityLow       = model.PriorityLow
	PriorityMedium    = model.PriorityMedium
	PriorityHigh      = model.PriorityHigh
	PriorityTop       = model.PriorityTop
)

// internetCheckTimeout bounds the default connectivity check
const internetCheckTimeout = 5 * time.Second

// Options configures an App
type Options struct {
	// Identity overrides the process identity used to resolve paths
	Identity *paths.Identity

	// ConfigFile overrides the configuration file location
	ConfigFile string

	// Verbosity raises the configured log level
	Verbosity int

	// NoLogFile keeps logs on the console only
	NoLogFile bool

	// FallbackConfig replaces a config file that fails to load with the
	// defaults and logs a warning instead of failing
	FallbackConfig bool

	Backup           actions.BackupFunc
	InternetCheck    func(ctx context.Context) bool
	ValidatePassword func(ctx context.Context, password string) bool
}

// App ties paths, configuration, logging and the gem plumbing together
type App struct {
	Paths    paths.Paths
	Config   *config.Config
	Registry *registry.Registry
	Actions  *actions.Dispatcher
	Enricher *enrich.Enricher

	configFile string
	closeLog   func()
}

// New creates an App. A nil opts uses the current process identity and the
// default configuration file.
func New(opts *Options) (*App, error) {
	if opts == nil {
		opts = &Options{}
	}

	var id paths.Identity
	if opts.Identity != nil {
		id = *opts.Identity
	} else {
		current, err := paths.CurrentIdentity()
		if err != nil {
			return nil, fmt.Errorf("resolving identity: %w", err)
		}
		id = current
	}
	p := paths.Resolve(paths.AppName, id)

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = p.ConfigFile()
	}

	cfg, cfgErr := config.Load(configFile)
	if cfgErr != nil {
		if !opts.FallbackConfig {
			return nil, fmt.Errorf("loading config: %w", cfgErr)
		}
		cfg = config.DefaultConfig()
	}

	verbosity := cfg.LogLevel
	if opts.Verbosity > verbosity {
		verbosity = opts.Verbosity
	}
	logFile := p.LogFile()
	if opts.NoLogFile {
		logFile = ""
	}
	closeLog := logging.Setup(verbosity, logFile)

	internetCheck := opts.InternetCheck
	if internetCheck == nil {
		internetCheck = func(ctx context.Context) bool {
			return platform.CheckInternet(ctx, platform.DefaultInternetAddr, internetCheckTimeout)
		}
	}

	reg := registry.New()
	app := &App{
		Paths:    p,
		Config:   cfg,
		Registry: reg,
		Actions: actions.NewDispatcher(actions.Options{
			Registry:         reg,
			Root:             id.Root,
			BackupEnabled:    cfg.Backup.Enabled,
			Backup:           opts.Backup,
			InternetCheck:    internetCheck,
			ValidatePassword: opts.ValidatePassword,
		}),
		Enricher:   enrich.New(cfg.Enrich.Workers),
		configFile: configFile,
		closeLog:   closeLog,
	}

	logger := logging.GetLogger("app")
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Str("config", configFile).Msg("Using default configuration")
	}
	logger.Debug().
		Str("config", configFile).
		Str("cache", p.CacheDir).
		Bool("root", id.Root).
		Msg("App initialized")

	return app, nil
}

// ConfigFile returns the configuration file in use
func (a *App) ConfigFile() string {
	return a.configFile
}

// RegisterGem registers a gem manager and the methods its custom actions call
func (a *App) RegisterGem(m SoftwareManager, methods map[string]ActionFunc) error {
	if err := a.Registry.Register(m); err != nil {
		return err
	}
	for name, fn := range methods {
		if err := a.Actions.Handle(m.GemName(), name, fn); err != nil {
			return err
		}
	}
	return nil
}

// EnabledGems returns the managers enabled by the configuration
func (a *App) EnabledGems() []SoftwareManager {
	return a.Registry.Enabled(a.Config.Gems)
}

// Platform detects the platform and which enabled gems are available on it
func (a *App) Platform() (*platform.Platform, error) {
	return platform.Detect(a.EnabledGems())
}

// Execute runs a custom action on pkg
func (a *App) Execute(ctx context.Context, action CustomSoftwareAction, pkg Package, req ActionRequest) (ActionResult, error) {
	if pkg != nil && !a.Config.GemEnabled(pkg.Common().GemName) && action.Manager == nil {
		return ActionResult{}, &Error{
			Op:      "execute " + action.ManagerMethod,
			Package: pkg.Common().ID,
			Err:     fmt.Errorf("%w: gem '%s' is disabled", ErrGemNotFound, pkg.Common().GemName),
		}
	}
	return a.Actions.Execute(ctx, action, pkg, req)
}

// Enrich loads the data of packages still in LOADING_DATA
func (a *App) Enrich(ctx context.Context, pkgs []Package, fetch enrich.FetchFunc) (*enrich.Report, error) {
	return a.Enricher.Run(ctx, pkgs, fetch)
}

// RankSuggestions drops installed packages, orders the rest by priority and
// keeps at most suggestions.by_type per gem. It returns nil when suggestions
// are disabled.
func (a *App) RankSuggestions(suggestions []PackageSuggestion) []PackageSuggestion {
	if !a.Config.Suggestions.Enabled {
		return nil
	}

	ranked := make([]PackageSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Package == nil || s.Package.Common().Installed {
			continue
		}
		ranked = append(ranked, s)
	}
	model.SortSuggestions(ranked)

	limit := a.Config.Suggestions.ByType
	if limit == 0 {
		return ranked
	}

	perGem := make(map[string]int)
	capped := ranked[:0]
	for _, s := range ranked {
		gem := s.Package.Common().GemName
		if perGem[gem] >= limit {
			continue
		}
		perGem[gem]++
		capped = append(capped, s)
	}
	return capped
}

// DiskCachePaths returns where the icon and data of pkg are cached.
// ok is false when the disk cache is disabled or the package does not support it.
func (a *App) DiskCachePaths(pkg Package) (icon, data string, ok bool) {
	if !a.Config.Disk.Cache.Enabled || !model.SupportsDiskCache(pkg) {
		return "", "", false
	}
	icon = model.DiskIconPath(a.Paths.CacheDir, pkg)
	data = model.DiskDataPath(a.Paths.CacheDir, pkg)
	return icon, data, icon != ""
}

// SaveConfig writes the current configuration back to its file
func (a *App) SaveConfig() error {
	return config.Save(a.Config, a.configFile)
}

// Close releases the log file
func (a *App) Close() error {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
	return nil
}
