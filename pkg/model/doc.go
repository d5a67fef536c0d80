// pkg/model/doc.go

// Package model defines the data shared between gems and the user facing layers:
// packages and their default behaviours, custom actions, pending updates,
// revision history and suggestions.
//
// Gems provide package variants by embedding Base and implementing the
// remaining Package methods:
//
//	type FlatpakApp struct {
//		model.Base
//		Ref string
//	}
//
// Behaviours that depend on variant methods (disk cache support and
// locations) are plain functions taking a Package.
package model
