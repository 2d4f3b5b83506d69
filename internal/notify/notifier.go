package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Notifier delivers desktop notifications. Available reports whether the
// platform can show them at all; callers probe it lazily on first use.
type Notifier interface {
	Send(title, body string) error
	Available() bool
}

type NoopNotifier struct{}

func (NoopNotifier) Send(string, string) error { return nil }
func (NoopNotifier) Available() bool           { return true }

// ExecNotifier shells out to the platform notifier: notify-send on Linux,
// osascript on macOS. Elsewhere it reports unavailable.
type ExecNotifier struct {
	probed    bool
	available bool
}

func (n *ExecNotifier) Available() bool {
	if n.probed {
		return n.available
	}
	n.probed = true
	switch runtime.GOOS {
	case "linux":
		_, err := exec.LookPath("notify-send")
		n.available = err == nil
	case "darwin":
		_, err := exec.LookPath("osascript")
		n.available = err == nil
	default:
		n.available = false
	}
	return n.available
}

func (n *ExecNotifier) Send(title, body string) error {
	if !n.Available() {
		return fmt.Errorf("notify: no notifier available on %s", runtime.GOOS)
	}
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
