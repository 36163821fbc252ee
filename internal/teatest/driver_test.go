package teatest

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type tickMsg struct{}
type echoMsg string

// counterModel counts keys and echoes through Cmds so draining is observable.
type counterModel struct {
	keys   []string
	echoes []string
	width  int
}

func (m counterModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return echoMsg("init") },
		tea.Tick(time.Hour, func(time.Time) tea.Msg { return tickMsg{} }),
	)
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case echoMsg:
		m.echoes = append(m.echoes, string(msg))
	case tickMsg:
		m.echoes = append(m.echoes, "tick")
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "e":
			return m, func() tea.Msg { return echoMsg("key") }
		}
	}
	return m, nil
}

func (m counterModel) View() string {
	return fmt.Sprintf("w=%d keys=%v echoes=%v", m.width, m.keys, m.echoes)
}

func TestDriver_DrainInitSkipsTimers(t *testing.T) {
	d := New(t, counterModel{}, WithSize(80, 24))
	d.DrainInit()

	m := d.Model.(counterModel)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, []string{"init"}, m.echoes)
}

func TestDriver_PressAndType(t *testing.T) {
	d := New(t, counterModel{})
	d.Press("enter")
	d.Press("space")
	d.Type("ab")
	d.PressN("down", 2)
	d.Press("e")

	m := d.Model.(counterModel)
	assert.Equal(t, []string{"enter", " ", "a", "b", "down", "down", "e"}, m.keys)
	assert.Equal(t, []string{"key"}, m.echoes)
	d.RequireViewContains("echoes=[key]")
}

func TestDriver_QuitStopsInput(t *testing.T) {
	d := New(t, counterModel{})
	d.Press("q")
	assert.True(t, d.Quitting)

	d.Press("x")
	assert.Equal(t, []string{"q"}, d.Model.(counterModel).keys)
}
