package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/PixPMusic/gopher-deck/internal/buttons"
	"github.com/PixPMusic/gopher-deck/internal/config"
	"github.com/PixPMusic/gopher-deck/internal/hardware"
	"github.com/PixPMusic/gopher-deck/internal/leds"
	"github.com/PixPMusic/gopher-deck/internal/midi"
)

type board interface {
	buttons.Board
	io.Closer
}

type simBoard struct {
	*hardware.Sim
}

func (simBoard) Close() error { return nil }

func runDeck(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalln("load config:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := deck(ctx, cfg); err != nil {
		log.Fatalln("run:", err)
	}
}

func deck(ctx context.Context, cfg *config.Config) error {
	manager := midi.NewManager()
	defer manager.Close()

	send, err := openOutput(manager, cfg.MIDIOut)
	if err != nil {
		return err
	}

	tracker := leds.NewTracker()
	b, err := openBoard(manager, cfg, tracker)
	if err != nil {
		return err
	}
	defer b.Close()

	responder := midi.NewResponder(send)
	responder.SetEnabled(cfg.Diagnostics)

	bt := buttons.New(buttons.Deps{
		Store:       config.NewDatabase(cfg),
		Board:       b,
		Transport:   midi.NewOut(send),
		NoteState:   tracker,
		Diagnostics: responder,
	})

	interval := time.Duration(cfg.PollIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = time.Millisecond
	}

	log.WithFields(log.Fields{
		"board":    cfg.Board.Kind,
		"controls": bt.Count(),
		"interval": interval,
	}).Info("polling")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping")
			return nil
		case <-ticker.C:
			bt.Update()
		}
	}
}

// openOutput opens the named port. Without a name every message is dropped.
func openOutput(m *midi.Manager, name string) (func(gomidi.Message) error, error) {
	if name == "" {
		log.Warn("no midi_out configured, messages are discarded")
		return nil, nil
	}
	return m.OpenSender(name)
}

func openBoard(m *midi.Manager, cfg *config.Config, tracker *leds.Tracker) (board, error) {
	switch cfg.Board.Kind {
	case config.BoardSim:
		log.Warn("sim board has no input, use the simulate command to drive it")
		return simBoard{hardware.NewSim(cfg.Board.Count)}, nil

	case config.BoardGPIO:
		return hardware.OpenGPIO(cfg.Board.Pins)

	case config.BoardGrid:
		device := midi.GetDevice(midi.DeviceType(cfg.Board.DeviceType))
		grid := hardware.NewGrid(cfg.Board.Count)
		if err := grid.Attach(m, cfg.Board.InPort, device); err != nil {
			return nil, err
		}

		if cfg.Board.FeedbackTo != "" {
			feedback, err := m.OpenSender(cfg.Board.FeedbackTo)
			if err != nil {
				grid.Close()
				return nil, err
			}
			if err := device.ActivateProgrammerMode(feedback); err != nil {
				log.WithError(err).Warn("programmer mode")
			}
			if err := device.ClearAllPads(feedback); err != nil {
				log.WithError(err).Warn("clear pads")
			}
			tracker.Mirror(device, feedback)
		}
		return grid, nil
	}

	return nil, fmt.Errorf("unknown board kind %q", cfg.Board.Kind)
}
