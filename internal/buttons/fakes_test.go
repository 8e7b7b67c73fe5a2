package buttons

import (
	"fmt"
	"testing"

	"github.com/PixPMusic/gopher-deck/internal/clock"
	"github.com/PixPMusic/gopher-deck/internal/config"
)

type fakeBoard struct {
	levels    []bool
	available bool
	reads     map[int]int
}

func newFakeBoard(count int) *fakeBoard {
	return &fakeBoard{
		levels:    make([]bool, count),
		available: true,
		reads:     make(map[int]int),
	}
}

func (f *fakeBoard) Count() int             { return len(f.levels) }
func (f *fakeBoard) DataAvailable() bool    { return f.available }
func (f *fakeBoard) EncoderPair(id int) int { return id / 2 }
func (f *fakeBoard) RawState(id int) bool {
	f.reads[id]++
	return f.levels[id]
}

type message struct {
	Kind    string
	Number  uint8
	Value   uint8
	Channel uint8
}

func (m message) String() string {
	return fmt.Sprintf("%s %d/%d ch%d", m.Kind, m.Number, m.Value, m.Channel)
}

type recordingTransport struct {
	sent []message
}

func (r *recordingTransport) SendNoteOn(note, velocity, channel uint8) {
	r.sent = append(r.sent, message{"note_on", note, velocity, channel})
}

func (r *recordingTransport) SendNoteOff(note, velocity, channel uint8) {
	r.sent = append(r.sent, message{"note_off", note, velocity, channel})
}

func (r *recordingTransport) SendControlChange(controller, value, channel uint8) {
	r.sent = append(r.sent, message{"cc", controller, value, channel})
}

func (r *recordingTransport) SendProgramChange(program, channel uint8) {
	r.sent = append(r.sent, message{"pc", program, 0, channel})
}

func (r *recordingTransport) reset() {
	r.sent = nil
}

type noteChange struct {
	Note     uint8
	Velocity uint8
	On       bool
}

type recordingNotes struct {
	changes []noteChange
}

func (r *recordingNotes) SetNoteState(note, velocity uint8, on bool) {
	r.changes = append(r.changes, noteChange{note, velocity, on})
}

type recordingResponder struct {
	enabled   bool
	current   []uint8
	responses [][]uint8
}

func (r *recordingResponder) Enabled() bool { return r.enabled }
func (r *recordingResponder) StartResponse() {
	r.current = nil
}
func (r *recordingResponder) AddToResponse(b uint8) {
	r.current = append(r.current, b)
}
func (r *recordingResponder) SendResponse() {
	r.responses = append(r.responses, r.current)
	r.current = nil
}

type harness struct {
	buttons   *Buttons
	db        *config.Database
	board     *fakeBoard
	transport *recordingTransport
	notes     *recordingNotes
	diag      *recordingResponder
	clock     *clock.Manual
}

func newHarness(t *testing.T, count int, setup func(c *config.Config)) *harness {
	t.Helper()

	cfg := config.Default()
	cfg.Board.Count = count
	cfg.Controls = nil
	cfg.Encoders = nil
	cfg.Normalize()
	if setup != nil {
		setup(cfg)
	}

	h := &harness{
		db:        config.NewDatabase(cfg),
		board:     newFakeBoard(count),
		transport: &recordingTransport{},
		notes:     &recordingNotes{},
		diag:      &recordingResponder{},
		clock:     clock.NewManual(1000),
	}
	h.buttons = New(Deps{
		Store:       h.db,
		Board:       h.board,
		Transport:   h.transport,
		NoteState:   h.notes,
		Diagnostics: h.diag,
		Clock:       h.clock,
	})
	return h
}

// poll sets the raw level of id and runs n scans
func (h *harness) poll(id int, level bool, n int) {
	h.board.levels[id] = level
	for i := 0; i < n; i++ {
		h.buttons.Update()
	}
}
