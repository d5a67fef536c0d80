// pkg/model/manager.go
package model

// SoftwareManager defines the contract every gem (backend) manager fulfils.
// Package operations beyond these are exposed as named custom actions.
type SoftwareManager interface {
	// GemName returns the gem name (e.g., "flatpak", "snap")
	GemName() string

	// IsAvailable checks if the gem can be used on this system
	IsAvailable() bool
}
