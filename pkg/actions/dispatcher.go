// pkg/actions/dispatcher.go
package actions

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bauh-project/bauh/pkg/logging"
	"github.com/bauh-project/bauh/pkg/model"
	"github.com/bauh-project/bauh/pkg/registry"
)

// Watcher receives progress messages while an action runs
type Watcher interface {
	Print(msg string)
	ChangeSubstatus(msg string)
}

// ActionFunc implements a manager method. It reports whether the action succeeded.
type ActionFunc func(ctx context.Context, pkg model.Package, rootPassword string, w Watcher) (bool, error)

// BackupFunc performs a system backup before an action
type BackupFunc func(ctx context.Context, w Watcher) error

// Options configures a Dispatcher
type Options struct {
	Registry      *registry.Registry
	Root          bool // The process already runs as root
	BackupEnabled bool // Honour the Backup flag of actions
	Backup        BackupFunc

	// InternetCheck reports connectivity; nil assumes a connection is available
	InternetCheck func(ctx context.Context) bool

	// ValidatePassword checks a root password; nil accepts any non-empty password
	ValidatePassword func(ctx context.Context, password string) bool
}

// Request carries the caller side inputs of one execution
type Request struct {
	RootPassword string
	Watcher      Watcher

	// Confirm asks the user to confirm the action. A nil Confirm
	// cancels actions that require confirmation.
	Confirm func(action model.CustomSoftwareAction) bool
}

// Result describes a finished execution
type Result struct {
	Success bool
	Refresh bool // Listed packages should be refreshed
}

type methodKey struct {
	gem    string
	method string
}

// Dispatcher executes custom actions by calling the named manager method
type Dispatcher struct {
	opts    Options
	logger  zerolog.Logger
	mu      sync.RWMutex
	methods map[methodKey]ActionFunc
}

// NewDispatcher creates a Dispatcher
func NewDispatcher(opts Options) *Dispatcher {
	if opts.Registry == nil {
		opts.Registry = registry.New()
	}
	return &Dispatcher{
		opts:    opts,
		logger:  logging.GetLogger("actions"),
		methods: make(map[methodKey]ActionFunc),
	}
}

// Handle registers fn as the method of the given gem
func (d *Dispatcher) Handle(gem, method string, fn ActionFunc) error {
	if gem == "" || method == "" {
		return fmt.Errorf("handle: %w: gem and method are required", ErrInvalidAction)
	}
	if fn == nil {
		return fmt.Errorf("handle %s.%s: %w: nil func", gem, method, ErrInvalidAction)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	key := methodKey{gem: gem, method: method}
	if _, exists := d.methods[key]; exists {
		return fmt.Errorf("handle %s.%s: method already registered", gem, method)
	}
	d.methods[key] = fn
	return nil
}

// Methods returns the method names registered for gem
func (d *Dispatcher) Methods(gem string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var names []string
	for key := range d.methods {
		if key.gem == gem {
			names = append(names, key.method)
		}
	}
	sort.Strings(names)
	return names
}

// Execute runs action on pkg, enforcing the action policy flags in order:
// internet, confirmation, root, backup.
func (d *Dispatcher) Execute(ctx context.Context, action model.CustomSoftwareAction, pkg model.Package, req Request) (Result, error) {
	op := "execute " + action.ManagerMethod
	pkgID := ""
	if pkg != nil {
		pkgID = pkg.Common().ID
	}
	fail := func(err error) (Result, error) {
		d.logger.Warn().Err(err).Str("method", action.ManagerMethod).Str("package", pkgID).Msg("Action failed")
		return Result{}, &Error{Op: op, Package: pkgID, Err: err}
	}

	if pkg == nil {
		return fail(fmt.Errorf("%w: package cannot be nil", ErrInvalidAction))
	}
	if action.ManagerMethod == "" {
		return fail(fmt.Errorf("%w: no manager method", ErrInvalidAction))
	}

	fn, gem, err := d.resolve(action, pkg)
	if err != nil {
		return fail(err)
	}

	w := req.Watcher
	if w == nil {
		w = nopWatcher{}
	}

	if action.RequiresInternet && d.opts.InternetCheck != nil && !d.opts.InternetCheck(ctx) {
		return fail(ErrNoInternet)
	}

	if action.RequiresConfirmation && (req.Confirm == nil || !req.Confirm(action)) {
		return fail(ErrCancelled)
	}

	if action.RequiresRoot && !d.opts.Root {
		if req.RootPassword == "" {
			return fail(ErrRootRequired)
		}
		if d.opts.ValidatePassword != nil && !d.opts.ValidatePassword(ctx, req.RootPassword) {
			return fail(fmt.Errorf("%w: invalid password", ErrRootRequired))
		}
	}

	if action.Backup && d.opts.BackupEnabled && d.opts.Backup != nil {
		if err := d.opts.Backup(ctx, w); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrBackupFailed, err))
		}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	done := logging.LogOperationStart(d.logger.With().Str("gem", gem).Str("package", pkgID).Logger(), op)
	success, err := fn(ctx, pkg, req.RootPassword, w)
	done()
	if err != nil {
		return fail(err)
	}

	return Result{
		Success: success,
		Refresh: success && action.Refresh,
	}, nil
}

// resolve finds the func implementing the action method and the gem providing it
func (d *Dispatcher) resolve(action model.CustomSoftwareAction, pkg model.Package) (ActionFunc, string, error) {
	manager := action.Manager
	if manager == nil {
		m, err := d.opts.Registry.Get(pkg.Common().GemName)
		if err != nil {
			return nil, "", err
		}
		manager = m
	}

	gem := manager.GemName()

	d.mu.RLock()
	fn, ok := d.methods[methodKey{gem: gem, method: action.ManagerMethod}]
	d.mu.RUnlock()
	if !ok {
		return nil, gem, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, gem, action.ManagerMethod)
	}
	return fn, gem, nil
}

type nopWatcher struct{}

func (nopWatcher) Print(string)           {}
func (nopWatcher) ChangeSubstatus(string) {}
