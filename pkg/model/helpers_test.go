package model

// testApp is a minimal package variant used across the model tests
type testApp struct {
	Base
	typ         string
	application bool
	cached      map[string]any
}

func newTestApp(id, name string) *testApp {
	app := &testApp{
		Base:        NewBase("test"),
		typ:         "testapp",
		application: true,
	}
	app.ID = id
	app.Name = name
	return app
}

func (a *testApp) HasHistory() bool        { return false }
func (a *testApp) HasInfo() bool           { return true }
func (a *testApp) CanBeDowngraded() bool   { return false }
func (a *testApp) Type() string            { return a.typ }
func (a *testApp) DefaultIconPath() string { return "/usr/share/icons/test.svg" }
func (a *testApp) TypeIconPath() string    { return "/usr/share/icons/test-type.svg" }
func (a *testApp) IsApplication() bool     { return a.application }
func (a *testApp) CanBeRun() bool          { return a.Installed }
func (a *testApp) Publisher() string       { return "tester" }
func (a *testApp) SupportsBackup() bool    { return false }

func (a *testApp) DataToCache() map[string]any {
	return map[string]any{"name": a.Name, "icon_url": a.IconURL}
}

func (a *testApp) FillCachedData(data map[string]any) {
	a.cached = data
	if icon, ok := data["icon_url"].(string); ok {
		a.IconURL = icon
	}
}

type testManager struct {
	gem string
}

func (m *testManager) GemName() string   { return m.gem }
func (m *testManager) IsAvailable() bool { return true }
