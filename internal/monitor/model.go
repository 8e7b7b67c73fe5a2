// Package monitor is a terminal simulator: keys drive the lines of a
// simulated board and the view shows raw levels, pressed flags and the
// messages sent.
package monitor

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PixPMusic/gopher-deck/internal/buttons"
	"github.com/PixPMusic/gopher-deck/internal/config"
	"github.com/PixPMusic/gopher-deck/internal/hardware"
	"github.com/PixPMusic/gopher-deck/internal/midi"
)

const columns = 8

var (
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	rawStyle     = cellStyle.Foreground(lipgloss.Color("11"))
	pressedStyle = cellStyle.Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0"))
	cursorStyle  = lipgloss.NewStyle().Underline(true).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	logStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

type tickMsg time.Time

// Model is the bubbletea model of the simulator
type Model struct {
	Buttons  *buttons.Buttons
	Board    *hardware.Sim
	DB       *config.Database
	Recorder *Recorder
	Interval time.Duration

	// Diagnostics follows the diagnostics toggle when set
	Diagnostics *midi.Responder

	cursor   int
	ticks    uint64
	quitting bool
}

// NewModel returns a simulator polling every interval
func NewModel(b *buttons.Buttons, board *hardware.Sim, db *config.Database, rec *Recorder, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return Model{
		Buttons:  b,
		Board:    board,
		DB:       db,
		Recorder: rec,
		Interval: interval,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.Board.Commit()
		m.Buttons.Update()
		m.ticks++
		return m, m.tick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := m.Board.Count()

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < count-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor >= columns {
			m.cursor -= columns
		}
	case "down", "j":
		if m.cursor+columns < count {
			m.cursor += columns
		}
	case " ", "x", "enter":
		m.Board.Toggle(m.cursor)
	case "m":
		ctrl, _ := m.DB.Control(m.cursor)
		next := config.ModeLatching
		if ctrl.Mode == config.ModeLatching {
			next = config.ModeMomentary
		}
		m.DB.Write(config.BlockButton, config.SectionButtonType, m.cursor, int(next))
	case "t":
		ctrl, _ := m.DB.Control(m.cursor)
		next := (ctrl.Message + 1) % 3
		m.DB.Write(config.BlockButton, config.SectionButtonMessageType, m.cursor, int(next))
	case "e":
		pair := m.Board.EncoderPair(m.cursor)
		enabled := m.DB.Read(config.BlockEncoder, config.SectionEncoderEnabled, pair)
		m.DB.Write(config.BlockEncoder, config.SectionEncoderEnabled, pair, 1-enabled)
	case "d":
		on := m.DB.Read(config.BlockMIDI, config.SectionMIDIFeature, config.FeatureDiagnostics)
		m.DB.Write(config.BlockMIDI, config.SectionMIDIFeature, config.FeatureDiagnostics, 1-on)
		if m.Diagnostics != nil {
			m.Diagnostics.SetEnabled(on == 0)
		}
	}

	return m, nil
}

// Cursor returns the selected control
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("gopher-deck simulator"))
	b.WriteString(fmt.Sprintf("  scans %d\n\n", m.ticks))

	count := m.Board.Count()
	for row := 0; row*columns < count; row++ {
		cells := make([]string, 0, columns)
		for col := 0; col < columns; col++ {
			id := row*columns + col
			if id >= count {
				break
			}
			cells = append(cells, m.cell(id))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	ctrl, _ := m.DB.Control(m.cursor)
	encoder := ""
	if m.DB.Read(config.BlockEncoder, config.SectionEncoderEnabled, m.Board.EncoderPair(m.cursor)) != 0 {
		encoder = "  (encoder)"
	}
	b.WriteString(fmt.Sprintf("\ncontrol %d: %s %s %d%s\n", m.cursor, ctrl.Mode, ctrl.Message, ctrl.Value, encoder))

	b.WriteString("\n")
	for _, line := range m.Recorder.Recent() {
		b.WriteString(logStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("\narrows move  space toggle  m mode  t message  e encoder  d diagnostics  q quit"))
	return b.String()
}

func (m Model) cell(id int) string {
	label := fmt.Sprintf("%02d", id)
	if id == m.cursor {
		label = cursorStyle.Render(label)
	}

	switch {
	case m.Buttons.Pressed(id):
		return pressedStyle.Render(label)
	case m.Board.Level(id):
		return rawStyle.Render(label)
	}
	return cellStyle.Render(label)
}

// Run starts the simulator and blocks until the user quits
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
