package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func stubLookPath(t *testing.T, found ...string) {
	t.Helper()
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestBrowserCommand(t *testing.T) {
	stubLookPath(t, "xdg-open")

	name, args, err := browserCommand("darwin", "https://example.test")
	require.NoError(t, err)
	require.Equal(t, "open", name)
	require.Equal(t, []string{"https://example.test"}, args)

	name, args, err = browserCommand("windows", "https://example.test")
	require.NoError(t, err)
	require.Equal(t, "rundll32", name)
	require.Equal(t, []string{"url.dll,FileProtocolHandler", "https://example.test"}, args)

	name, _, err = browserCommand("linux", "https://example.test")
	require.NoError(t, err)
	require.Equal(t, "xdg-open", name)

	_, _, err = browserCommand("plan9", "https://example.test")
	require.Error(t, err)
}

func TestBrowserCommandMissingXdgOpen(t *testing.T) {
	stubLookPath(t)
	_, _, err := browserCommand("linux", "https://example.test")
	require.ErrorContains(t, err, "xdg-open")
}

func TestOpenURLRejectsNonHTTP(t *testing.T) {
	err := openURLImpl("file:///etc/passwd")
	require.ErrorContains(t, err, "non-http")
}

func TestStubPlatformActionsRestores(t *testing.T) {
	var calls []string
	restore := StubPlatformActions(&calls)
	require.NoError(t, OpenURL("https://a.test"))
	require.NoError(t, CopyToClipboard("b"))
	restore()

	require.Equal(t, []string{"open https://a.test", "copy b"}, calls)
	require.NoError(t, func() error {
		restore = StubPlatformActions(nil)
		defer restore()
		return OpenURL("https://c.test")
	}())
	require.Len(t, calls, 2)
}
