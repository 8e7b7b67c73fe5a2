package startup

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	args, err := Options{Executable: "/usr/bin/gopher-deck", ConfigPath: "/etc/deck.toml"}.args()
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/bin/gopher-deck", "run", "--config", "/etc/deck.toml"}, args)

	args, err = Options{Executable: "deck"}.args()
	require.NoError(t, err)
	assert.Equal(t, []string{"deck", "run"}, args)
}

func TestLinuxUnit(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("systemd units are linux only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	assert.False(t, IsEnabled())
	require.NoError(t, Enable(Options{Executable: "/opt/deck", ConfigPath: "/etc/deck.json"}))
	assert.True(t, IsEnabled())

	data, err := os.ReadFile(linuxUnitPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "ExecStart=/opt/deck run --config /etc/deck.json\n")

	require.NoError(t, Disable())
	assert.False(t, IsEnabled())
	require.NoError(t, Disable(), "disabling twice is fine")
}

func TestPlistTemplate(t *testing.T) {
	path := t.TempDir() + "/agent.plist"
	require.NoError(t, writeTemplate(path, plistTmpl, []string{"/opt/deck", "run"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<string>/opt/deck</string>\n        <string>run</string>")
	assert.Contains(t, string(data), "<string>com.gopher-deck</string>")
}
