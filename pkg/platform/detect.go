// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"

	"github.com/bauh-project/bauh/pkg/model"
	"github.com/bauh-project/bauh/pkg/registry"
)

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux
	Arch      string   // amd64, arm64, 386, arm
	Available []string // Gems usable on this system
}

// Detect detects the current platform and which of the given gems are available
func Detect(managers []model.SoftwareManager) (*Platform, error) {
	if runtime.GOOS != "linux" {
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	for _, m := range registry.Available(managers) {
		p.Available = append(p.Available, m.GemName())
	}

	return p, nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v)", p.OS, p.Arch, p.Available)
}
