// pkg/platform/utils.go
package platform

import (
	"context"
	"net"
	"os/exec"
	"time"
)

// DefaultInternetAddr is dialed to check for connectivity
const DefaultInternetAddr = "google.com:80"

// CommandExists checks if a command is available in PATH.
// Gem managers use it to implement IsAvailable.
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// CheckInternet reports if a TCP connection to addr can be opened within timeout
func CheckInternet(ctx context.Context, addr string, timeout time.Duration) bool {
	if addr == "" {
		addr = DefaultInternetAddr
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
