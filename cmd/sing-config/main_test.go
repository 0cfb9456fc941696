package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sing-config/sing-config/internal/desktop"
	"github.com/sing-config/sing-config/internal/menu"
)

// emptyConfig writes an empty config file so tests never pick up a developer's own file.
func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sing-config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, int) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	code := execute(root, args)
	return out.String(), code
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitCodeSuccess},
		{"generic", errors.New("boom"), ExitCodeGeneralError},
		{"config", &configError{err: errors.New("bad")}, ExitCodeConfigError},
		{"wrapped build", fmt.Errorf("start: %w", &menu.BuildError{Target: menu.TargetMenuBar, Err: menu.ErrDuplicateID}), ExitCodeMenuBuildError},
		{"port", fmt.Errorf("listen: %w", syscall.EADDRINUSE), ExitCodePortConflict},
		{"no desktop", fmt.Errorf("desktop host: %w", desktop.ErrUnavailable), ExitCodeNoDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := exitCodeFor(tt.err)
			assert.Equal(t, tt.want, code)
			assert.NotEqual(t, "Unknown error", exitCodeDescription(code))
		})
	}
}

func TestMenuCmdJSON(t *testing.T) {
	out, code := runCLI(t, "--config", emptyConfig(t), "menu", "--locale", "en", "--layout", "file-menu", "--json")
	require.Equal(t, ExitCodeSuccess, code)

	var views []menu.View
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 6)
	assert.Equal(t, "File", views[0].Label)
	assert.Equal(t, "Help", views[5].Label)

	file := views[0].Children
	last := file[len(file)-1]
	assert.Equal(t, menu.IDAppQuit, last.ID)
	assert.Equal(t, menu.AccelQuit, last.Accelerator)
}

func TestMenuCmdAppLayoutChinese(t *testing.T) {
	out, code := runCLI(t, "--config", emptyConfig(t), "menu", "--locale", "zh-CN", "--layout", "app-menu", "-o", "json")
	require.Equal(t, ExitCodeSuccess, code)

	var views []menu.View
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 7)
	assert.Equal(t, "sing-config", views[0].Label)
	assert.Equal(t, "文件", views[1].Label)
}

func TestMenuCmdTray(t *testing.T) {
	out, code := runCLI(t, "--config", emptyConfig(t), "menu", "--tray", "--locale", "en", "-o", "yaml")
	require.Equal(t, ExitCodeSuccess, code)

	assert.Contains(t, out, "id: tray_show")
	assert.Contains(t, out, "id: tray_quit")
	assert.Contains(t, out, "kind: separator")
	assert.NotContains(t, out, "accelerator")
}

func TestMenuCmdTable(t *testing.T) {
	out, code := runCLI(t, "--config", emptyConfig(t), "menu", "--locale", "en", "--layout", "file-menu", "-o", "table")
	require.Equal(t, ExitCodeSuccess, code)

	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "file_save_as")
	assert.Contains(t, out, "CmdOrCtrl+Shift+S")
	assert.Contains(t, out, "checked")
}

func TestMenuCmdInvalidLayout(t *testing.T) {
	_, code := runCLI(t, "--config", emptyConfig(t), "menu", "--layout", "ribbon")
	assert.Equal(t, ExitCodeConfigError, code)
}

func TestMenuCmdInvalidOutput(t *testing.T) {
	_, code := runCLI(t, "--config", emptyConfig(t), "menu", "-o", "xml")
	assert.Equal(t, ExitCodeConfigError, code)
}

func TestMenuCmdUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sing-config.toml")
	require.NoError(t, os.WriteFile(path, []byte("locale = \"en\"\n[menu]\nlayout = \"app-menu\"\n"), 0600))

	out, code := runCLI(t, "--config", path, "menu", "--json")
	require.Equal(t, ExitCodeSuccess, code)

	var views []menu.View
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 7)
	assert.Equal(t, "File", views[1].Label)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "sing-config.toml")

	out, code := runCLI(t, "config", "init", path)
	require.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, code = runCLI(t, "config", "init", path)
	assert.Equal(t, ExitCodeGeneralError, code, "refuses to overwrite")

	_, code = runCLI(t, "config", "init", "--force", path)
	assert.Equal(t, ExitCodeSuccess, code)

	out, code = runCLI(t, "--config", path, "config", "show")
	require.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, out, "# config file: "+path)
	assert.Contains(t, out, `locale = "zh"`)
	assert.Contains(t, out, "[menu]")
}

func TestConfigShowInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sing-config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = -5\n"), 0600))

	_, code := runCLI(t, "--config", path, "config", "show")
	assert.Equal(t, ExitCodeConfigError, code)
}

func TestServeRejectsNonLoopbackListen(t *testing.T) {
	_, code := runCLI(t, "--config", emptyConfig(t), "serve", "--listen", "0.0.0.0:17654")
	assert.Equal(t, ExitCodeConfigError, code)
}

func TestLocaleFlagOverridesSystemDetection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sing-config.toml")
	require.NoError(t, os.WriteFile(path, []byte("detect_system_locale = true\n"), 0600))

	for locale, want := range map[string]string{"en": "File", "zh": "文件"} {
		out, code := runCLI(t, "--config", path, "menu", "--locale", locale, "--layout", "file-menu", "--json")
		require.Equal(t, ExitCodeSuccess, code)

		var views []menu.View
		require.NoError(t, json.Unmarshal([]byte(out), &views))
		require.NotEmpty(t, views)
		assert.Equal(t, want, views[0].Label, "locale %s", locale)
	}
}
