package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PixPMusic/gopher-deck/internal/config"
	"github.com/PixPMusic/gopher-deck/internal/midi"
	"github.com/PixPMusic/gopher-deck/internal/startup"
)

func runPorts(cmd *cobra.Command, args []string) {
	manager := midi.NewManager()
	defer manager.Close()

	fmt.Println("inputs:")
	for _, name := range manager.ListInPorts() {
		fmt.Println("  " + name)
	}
	fmt.Println("outputs:")
	for _, name := range manager.ListOutPorts() {
		fmt.Println("  " + name)
	}
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Fatalln("config path:", err)
		}
		path = p
	}

	switch configFormat {
	case "json", "toml":
		path = strings.TrimSuffix(path, filepath.Ext(path)) + "." + configFormat
	default:
		log.Fatalf("unknown format %q, use json or toml", configFormat)
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		log.Fatalf("%s already exists, use --force to overwrite", path)
	}

	if err := config.Default().SaveAs(path); err != nil {
		log.Fatalln("write config:", err)
	}
	log.WithField("path", path).Info("config written")
}

func runStartupEnable(cmd *cobra.Command, args []string) {
	path := configPath
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			log.Fatalln("config path:", err)
		}
		path = abs
	}

	if err := startup.Enable(startup.Options{ConfigPath: path}); err != nil {
		log.Fatalln("enable startup:", err)
	}
	log.Info("launch at login enabled")
}

func runStartupDisable(cmd *cobra.Command, args []string) {
	if err := startup.Disable(); err != nil {
		log.Fatalln("disable startup:", err)
	}
	log.Info("launch at login disabled")
}

func runStartupStatus(cmd *cobra.Command, args []string) {
	if startup.IsEnabled() {
		fmt.Println("enabled")
	} else {
		fmt.Println("disabled")
	}
}
