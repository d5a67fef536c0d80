// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bauh-project/bauh/pkg/logging"
	"github.com/bauh-project/bauh/pkg/model"
)

// ErrGemNotFound is returned when no manager is registered for a gem
var ErrGemNotFound = errors.New("gem not found")

// Registry holds the SoftwareManager of every known gem
type Registry struct {
	mu       sync.RWMutex
	managers map[string]model.SoftwareManager
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		managers: make(map[string]model.SoftwareManager),
	}
}

// Register adds the manager under its gem name
func (r *Registry) Register(m model.SoftwareManager) error {
	if m == nil {
		return fmt.Errorf("registry: manager cannot be nil")
	}
	gem := m.GemName()
	if gem == "" {
		return fmt.Errorf("registry: manager has no gem name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.managers[gem]; exists {
		return fmt.Errorf("registry: gem '%s' is already registered", gem)
	}
	r.managers[gem] = m
	return nil
}

// Get returns the manager registered for gem
func (r *Registry) Get(gem string) (model.SoftwareManager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.managers[gem]
	if !ok {
		return nil, fmt.Errorf("registry: %w: '%s'", ErrGemNotFound, gem)
	}
	return m, nil
}

// Names returns the registered gem names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enabled returns the managers for the given gem names, in the given order.
// An empty list enables every registered gem. Unknown names are skipped.
func (r *Registry) Enabled(gems []string) []model.SoftwareManager {
	if len(gems) == 0 {
		gems = r.Names()
	}

	logger := logging.GetLogger("registry")
	managers := make([]model.SoftwareManager, 0, len(gems))
	for _, gem := range gems {
		m, err := r.Get(gem)
		if err != nil {
			logger.Warn().Str("gem", gem).Msg("Enabled gem is not registered, skipping")
			continue
		}
		managers = append(managers, m)
	}
	return managers
}

// Available filters managers down to the ones usable on this system
func Available(managers []model.SoftwareManager) []model.SoftwareManager {
	available := make([]model.SoftwareManager, 0, len(managers))
	for _, m := range managers {
		if m.IsAvailable() {
			available = append(available, m)
		}
	}
	return available
}
