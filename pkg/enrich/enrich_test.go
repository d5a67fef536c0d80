package enrich

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bauh-project/bauh/pkg/model"
)

type app struct {
	model.Base
}

func newApp(id string, status model.PackageStatus) *app {
	a := &app{Base: model.NewBase("flatpak")}
	a.ID = id
	a.Status = status
	return a
}

func (a *app) HasHistory() bool              { return false }
func (a *app) HasInfo() bool                 { return false }
func (a *app) CanBeDowngraded() bool         { return false }
func (a *app) Type() string                  { return "flatpak" }
func (a *app) DefaultIconPath() string       { return "" }
func (a *app) TypeIconPath() string          { return "" }
func (a *app) IsApplication() bool           { return true }
func (a *app) DataToCache() map[string]any   { return nil }
func (a *app) FillCachedData(map[string]any) {}
func (a *app) CanBeRun() bool                { return false }
func (a *app) Publisher() string             { return "" }
func (a *app) SupportsBackup() bool          { return false }

func TestRunMarksPackagesReady(t *testing.T) {
	loading1 := newApp("a", model.StatusLoadingData)
	ready := newApp("b", model.StatusReady)
	loading2 := newApp("c", model.StatusLoadingData)

	var fetched sync.Map
	var notified []string

	e := New(2)
	e.OnReady = func(pkg model.Package) {
		notified = append(notified, pkg.Common().ID)
	}

	report, err := e.Run(context.Background(), []model.Package{loading1, ready, loading2}, func(_ context.Context, pkg model.Package) error {
		fetched.Store(pkg.Common().ID, true)
		pkg.Common().Description = "details for " + pkg.Common().ID
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusReady, loading1.Status)
	assert.Equal(t, model.StatusReady, loading2.Status)
	assert.Equal(t, "details for a", loading1.Description)
	assert.Empty(t, ready.Description)

	_, readyFetched := fetched.Load("b")
	assert.False(t, readyFetched)

	assert.ElementsMatch(t, []string{"a", "c"}, notified)
	assert.Len(t, report.Ready, 2)
	assert.Empty(t, report.Failed)
}

func TestRunKeepsFailedPackagesLoading(t *testing.T) {
	ok := newApp("ok", model.StatusLoadingData)
	bad := newApp("bad", model.StatusLoadingData)

	report, err := New(4).Run(context.Background(), []model.Package{ok, bad}, func(_ context.Context, pkg model.Package) error {
		if pkg.Common().ID == "bad" {
			return errors.New("remote unavailable")
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusReady, ok.Status)
	assert.Equal(t, model.StatusLoadingData, bad.Status)
	require.Len(t, report.Failed, 1)
	assert.Same(t, bad, report.Failed[0])
}

func TestRunRespectsWorkerLimit(t *testing.T) {
	var pkgs []model.Package
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		pkgs = append(pkgs, newApp(id, model.StatusLoadingData))
	}

	var running, peak int32
	_, err := New(2).Run(context.Background(), pkgs, func(context.Context, model.Package) error {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pkg := newApp("a", model.StatusLoadingData)
	_, err := New(1).Run(ctx, []model.Package{pkg}, func(context.Context, model.Package) error {
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, model.StatusLoadingData, pkg.Status)
}

func TestRunRequiresFetch(t *testing.T) {
	_, err := New(1).Run(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestNewClampsWorkers(t *testing.T) {
	assert.Equal(t, 1, New(0).workers)
	assert.Equal(t, 3, New(3).workers)
}
