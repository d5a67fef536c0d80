// pkg/model/action.go
package model

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// CustomSoftwareAction describes an extra operation a package variant can expose
// (e.g. "purge configuration"). The action is executed by calling ManagerMethod
// on Manager, or on the manager of the package's gem when Manager is nil.
//
// Use Equal to compare actions. == and map keys panic when Manager holds an
// uncomparable value type.
type CustomSoftwareAction struct {
	I18nLabelKey       string          // i18n key of the action name
	I18nStatusKey      string          // i18n key shown while the action runs
	I18nDescriptionKey string          // i18n key of the action description (optional)
	I18nConfirmKey     string          // i18n key of the confirmation message (optional)
	IconPath           string          // Action icon path, empty for no icon
	ManagerMethod      string          // Name of the manager method to invoke
	Manager            SoftwareManager // Manager that executes the action (optional)

	RequiresRoot         bool // Whether the action needs root privileges
	Backup               bool // Whether a system backup should run before the action
	Refresh              bool // Whether listed packages should be refreshed on success
	RequiresInternet     bool // Whether the action needs an internet connection
	RequiresConfirmation bool // Whether the user must confirm before the action runs
}

// ActionOption customizes a CustomSoftwareAction built by NewCustomSoftwareAction
type ActionOption func(*CustomSoftwareAction)

// NewCustomSoftwareAction creates an action with the default policy:
// no backup, refresh on success, no internet needed, confirmation required.
func NewCustomSoftwareAction(labelKey, statusKey, iconPath, managerMethod string, requiresRoot bool, opts ...ActionOption) CustomSoftwareAction {
	a := CustomSoftwareAction{
		I18nLabelKey:         labelKey,
		I18nStatusKey:        statusKey,
		IconPath:             iconPath,
		ManagerMethod:        managerMethod,
		RequiresRoot:         requiresRoot,
		Refresh:              true,
		RequiresConfirmation: true,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func WithManager(m SoftwareManager) ActionOption {
	return func(a *CustomSoftwareAction) { a.Manager = m }
}

func WithBackup(backup bool) ActionOption {
	return func(a *CustomSoftwareAction) { a.Backup = backup }
}

func WithRefresh(refresh bool) ActionOption {
	return func(a *CustomSoftwareAction) { a.Refresh = refresh }
}

func WithConfirmKey(key string) ActionOption {
	return func(a *CustomSoftwareAction) { a.I18nConfirmKey = key }
}

func WithDescriptionKey(key string) ActionOption {
	return func(a *CustomSoftwareAction) { a.I18nDescriptionKey = key }
}

func WithRequiresInternet(required bool) ActionOption {
	return func(a *CustomSoftwareAction) { a.RequiresInternet = required }
}

func WithRequiresConfirmation(required bool) ActionOption {
	return func(a *CustomSoftwareAction) { a.RequiresConfirmation = required }
}

// Equal reports whether both actions hold the same field values
func (a CustomSoftwareAction) Equal(other CustomSoftwareAction) bool {
	return a.I18nLabelKey == other.I18nLabelKey &&
		a.I18nStatusKey == other.I18nStatusKey &&
		a.I18nDescriptionKey == other.I18nDescriptionKey &&
		a.I18nConfirmKey == other.I18nConfirmKey &&
		a.IconPath == other.IconPath &&
		a.ManagerMethod == other.ManagerMethod &&
		a.RequiresRoot == other.RequiresRoot &&
		a.Backup == other.Backup &&
		a.Refresh == other.Refresh &&
		a.RequiresInternet == other.RequiresInternet &&
		a.RequiresConfirmation == other.RequiresConfirmation &&
		sameManager(a.Manager, other.Manager)
}

// sameManager compares managers by ==, or by value when their type is not comparable
func sameManager(a, b SoftwareManager) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Hash returns a digest over all fields. Equal actions have equal hashes.
func (a CustomSoftwareAction) Hash() uint64 {
	d := xxhash.New()
	for _, s := range []string{
		a.I18nLabelKey,
		a.I18nStatusKey,
		a.I18nDescriptionKey,
		a.I18nConfirmKey,
		a.IconPath,
		a.ManagerMethod,
	} {
		writeField(d, s)
	}
	if a.Manager != nil {
		writeField(d, a.Manager.GemName())
	} else {
		writeField(d, "")
	}
	for _, b := range []bool{
		a.RequiresRoot,
		a.Backup,
		a.Refresh,
		a.RequiresInternet,
		a.RequiresConfirmation,
	} {
		writeField(d, strconv.FormatBool(b))
	}
	return d.Sum64()
}

func (a CustomSoftwareAction) String() string {
	return fmt.Sprintf("CustomSoftwareAction (label=%s, method=%s)", a.I18nLabelKey, a.ManagerMethod)
}

// writeField writes s followed by a separator so adjacent fields cannot merge
func writeField(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write([]byte{0})
}
