// Package startup registers the button daemon to run at login.
package startup

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"text/template"
)

// Options describe the command registered at login
type Options struct {
	// Executable defaults to the running binary
	Executable string
	// ConfigPath is passed to the run command when set
	ConfigPath string
}

func (o Options) args() ([]string, error) {
	exe := o.Executable
	if exe == "" {
		p, err := os.Executable()
		if err != nil {
			return nil, err
		}
		exe = p
	}
	args := []string{exe, "run"}
	if o.ConfigPath != "" {
		args = append(args, "--config", o.ConfigPath)
	}
	return args, nil
}

// Enable registers the daemon to launch at login
func Enable(o Options) error {
	args, err := o.args()
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case "darwin":
		return writeTemplate(macOSPlistPath(), plistTmpl, args)
	case "linux":
		return writeTemplate(linuxUnitPath(), unitTmpl, args)
	case "windows":
		return enableWindows(args)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// Disable removes the daemon from login items
func Disable() error {
	switch runtime.GOOS {
	case "darwin":
		return removeIfExists(macOSPlistPath())
	case "linux":
		return removeIfExists(linuxUnitPath())
	case "windows":
		return disableWindows()
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// IsEnabled checks if the daemon is registered
func IsEnabled() bool {
	switch runtime.GOOS {
	case "darwin":
		return exists(macOSPlistPath())
	case "linux":
		return exists(linuxUnitPath())
	case "windows":
		return exec.Command("reg", "query", windowsRegistryKey, "/v", windowsAppName).Run() == nil
	default:
		return false
	}
}

func writeTemplate(path string, tmpl *template.Template, args []string) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, args); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func removeIfExists(path string) error {
	if !exists(path) {
		return nil
	}
	return os.Remove(path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// --- macOS ---

const macOSLabel = "com.gopher-deck"

var plistTmpl = template.Must(template.New("plist").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>` + macOSLabel + `</string>
    <key>ProgramArguments</key>
    <array>
{{- range .}}
        <string>{{.}}</string>
{{- end}}
    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <true/>
</dict>
</plist>
`))

func macOSPlistPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "LaunchAgents", macOSLabel+".plist")
}

// --- Linux ---

const linuxUnitName = "gopher-deck.service"

var unitTmpl = template.Must(template.New("unit").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`[Unit]
Description=gopher-deck button controller

[Service]
ExecStart={{join . " "}}
Restart=on-failure

[Install]
WantedBy=default.target
`))

func linuxUnitPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "systemd", "user", linuxUnitName)
}

// --- Windows ---

const windowsRegistryKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`
const windowsAppName = "GopherDeck"

func enableWindows(args []string) error {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = `"` + a + `"`
	}
	cmd := exec.Command("reg", "add", windowsRegistryKey,
		"/v", windowsAppName,
		"/t", "REG_SZ",
		"/d", strings.Join(quoted, " "),
		"/f")
	return cmd.Run()
}

func disableWindows() error {
	cmd := exec.Command("reg", "delete", windowsRegistryKey, "/v", windowsAppName, "/f")
	output, err := cmd.CombinedOutput()
	// Ignore error if the key doesn't exist
	if err != nil && !strings.Contains(string(output), "unable to find") {
		return err
	}
	return nil
}
