package ui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// openURLFn and copyToClipboardFn are replaced in tests.
var (
	openURLFn         = openURLImpl
	copyToClipboardFn = copyToClipboardImpl
	lookPath          = exec.LookPath
)

// OpenURL opens url in the default browser.
func OpenURL(url string) error { return openURLFn(url) }

// CopyToClipboard copies text to the system clipboard.
func CopyToClipboard(text string) error { return copyToClipboardFn(text) }

// StubPlatformActions replaces browser and clipboard helpers with recorders
// and returns a restore function. Recorded calls are appended to calls.
func StubPlatformActions(calls *[]string) (restore func()) {
	origOpen, origCopy := openURLFn, copyToClipboardFn
	openURLFn = func(u string) error {
		if calls != nil {
			*calls = append(*calls, "open "+u)
		}
		return nil
	}
	copyToClipboardFn = func(s string) error {
		if calls != nil {
			*calls = append(*calls, "copy "+s)
		}
		return nil
	}
	return func() {
		openURLFn, copyToClipboardFn = origOpen, origCopy
	}
}

// browserCommand returns the command that opens url on goos.
func browserCommand(goos, url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if _, err := lookPath("xdg-open"); err != nil {
			return "", nil, fmt.Errorf("xdg-open not found (install xdg-utils)")
		}
		return "xdg-open", []string{url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

func openURLImpl(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-http URL %q", url)
	}
	name, args, err := browserCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}
	// The browser outlives this process, so no timeout applies.
	return exec.CommandContext(context.Background(), name, args...).Start()
}

func copyToClipboardImpl(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
