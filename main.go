package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

var (
	configPath   string
	logLevel     string
	outPort      string
	logFile      string
	configFormat string
	configForce  bool

	mainCmd = &cobra.Command{
		Use:              "gopher-deck",
		Short:            "Turn buttons into MIDI events",
		PersistentPreRun: setupLogging,
	}
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Poll the configured board and send MIDI",
		Run:   runDeck,
	}
	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Drive a simulated board from the terminal",
		Run:   runSimulate,
	}
	portsCmd = &cobra.Command{
		Use:   "ports",
		Short: "List MIDI ports",
		Run:   runPorts,
	}
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Run:   runConfigInit,
	}
	startupCmd = &cobra.Command{
		Use:   "startup",
		Short: "Manage launching at login",
	}
	startupEnableCmd = &cobra.Command{
		Use: "enable",
		Run: runStartupEnable,
	}
	startupDisableCmd = &cobra.Command{
		Use: "disable",
		Run: runStartupDisable,
	}
	startupStatusCmd = &cobra.Command{
		Use: "status",
		Run: runStartupStatus,
	}
)

func setupLogging(cmd *cobra.Command, args []string) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalln("log level:", err)
	}
	log.SetLevel(level)
}

func main() {
	mainCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config path. JSON or TOML, default is the user config directory")
	mainCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level. One of trace, debug, info, warn, error")

	simulateCmd.Flags().StringVarP(&outPort, "out", "o", "", "MIDI output port. Overrides midi_out from the config")
	simulateCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the simulator runs")

	configInitCmd.Flags().StringVarP(&configFormat, "format", "f", "json", "File format. json or toml")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	startupCmd.AddCommand(startupEnableCmd, startupDisableCmd, startupStatusCmd)
	mainCmd.AddCommand(runCmd, simulateCmd, portsCmd, configCmd, startupCmd)
	mainCmd.Execute()
}
