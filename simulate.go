package main

import (
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PixPMusic/gopher-deck/internal/buttons"
	"github.com/PixPMusic/gopher-deck/internal/config"
	"github.com/PixPMusic/gopher-deck/internal/hardware"
	"github.com/PixPMusic/gopher-deck/internal/leds"
	"github.com/PixPMusic/gopher-deck/internal/midi"
	"github.com/PixPMusic/gopher-deck/internal/monitor"
)

const simulateHistory = 12

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalln("load config:", err)
	}

	// the terminal belongs to the simulator
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalln("log file:", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	manager := midi.NewManager()
	defer manager.Close()

	port := cfg.MIDIOut
	if outPort != "" {
		port = outPort
	}
	send, err := openOutput(manager, port)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalln("open output:", err)
	}

	sim := hardware.NewSim(cfg.Board.Count)
	db := config.NewDatabase(cfg)
	responder := midi.NewResponder(send)
	responder.SetEnabled(cfg.Diagnostics)
	recorder := monitor.NewRecorder(midi.NewOut(send), simulateHistory)

	b := buttons.New(buttons.Deps{
		Store:       db,
		Board:       sim,
		Transport:   recorder,
		NoteState:   leds.NewTracker(),
		Diagnostics: responder,
	})

	interval := time.Duration(cfg.PollIntervalMs) * time.Millisecond
	m := monitor.NewModel(b, sim, db, recorder, interval)
	m.Diagnostics = responder

	if err := monitor.Run(m); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalln("simulate:", err)
	}
}
