package platform

import (
	"context"
	"net"
	"runtime"
	"testing"
	"time"

	"github.com/bauh-project/bauh/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	gem       string
	available bool
}

func (m *fakeManager) GemName() string   { return m.gem }
func (m *fakeManager) IsAvailable() bool { return m.available }

func TestDetect(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux only")
	}

	p, err := Detect([]model.SoftwareManager{
		&fakeManager{gem: "flatpak", available: true},
		&fakeManager{gem: "snap"},
		&fakeManager{gem: "appimage", available: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "linux", p.OS)
	assert.Equal(t, runtime.GOARCH, p.Arch)
	assert.Equal(t, []string{"flatpak", "appimage"}, p.Available)
	assert.Contains(t, p.String(), "flatpak")
}

func TestCommandExists(t *testing.T) {
	assert.True(t, CommandExists("sh"))
	assert.False(t, CommandExists("definitely-not-a-real-command-42"))
}

func TestCheckInternet(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	ctx := context.Background()
	assert.True(t, CheckInternet(ctx, ln.Addr().String(), time.Second))

	closed, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := closed.Addr().String()
	closed.Close()
	assert.False(t, CheckInternet(ctx, addr, time.Second))
}
