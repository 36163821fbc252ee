package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/pathfinder/internal/cli/formatter"
	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/alexanderramin/pathfinder/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type checklistKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Undo      key.Binding
	Next      key.Binding
	NextPhase key.Binding
	PrevPhase key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newChecklistKeyMap() checklistKeyMap {
	return checklistKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x", "enter"), key.WithHelp("space", "toggle done")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Next:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next incomplete")),
		NextPhase: key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "next phase")),
		PrevPhase: key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab", "prev phase")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k checklistKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Undo, k.Help, k.Quit}
}

func (k checklistKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPhase, k.PrevPhase},
		{k.Toggle, k.Undo, k.Next},
		{k.Help, k.Quit},
	}
}

type rowKind int

const (
	rowPhase rowKind = iota
	rowGroup
	rowItem
)

// checklistRow is one rendered line; item rows carry the index into keys.
type checklistRow struct {
	kind  rowKind
	phase int
	group int
	item  int
}

type clearStatusMsg struct{ seq int }

const statusTTL = 3 * time.Second

// checklistModel is the interactive view over a service.Checklist. Every
// toggle is saved as it happens.
type checklistModel struct {
	ctx    context.Context
	list   *service.Checklist
	keys   []domain.ItemKey
	rows   []checklistRow
	cursor int // index into keys
	offset int // first visible row

	undo []domain.CompletionState

	status    string
	statusSeq int

	width, height int
	keymap        checklistKeyMap
	help          help.Model
	quitting      bool
}

func newChecklistModel(ctx context.Context, list *service.Checklist) checklistModel {
	m := checklistModel{
		ctx:    ctx,
		list:   list,
		keys:   list.Keys(),
		keymap: newChecklistKeyMap(),
		help:   help.New(),
	}
	m.rows = buildChecklistRows(list.Roadmap())
	if next, ok := list.Next(); ok {
		m.cursor = m.keyIndex(next)
	}
	if !list.Persisted() {
		m.status = "saved progress could not be read; starting empty"
	}
	return m
}

func buildChecklistRows(r domain.Roadmap) []checklistRow {
	var rows []checklistRow
	n := 0
	for pi, phase := range r.Phases {
		rows = append(rows, checklistRow{kind: rowPhase, phase: pi})
		for gi, g := range phase.Groups {
			rows = append(rows, checklistRow{kind: rowGroup, phase: pi, group: gi})
			for range g.Items {
				rows = append(rows, checklistRow{kind: rowItem, phase: pi, group: gi, item: n})
				n++
			}
		}
	}
	return rows
}

func (m checklistModel) keyIndex(k domain.ItemKey) int {
	for i, candidate := range m.keys {
		if candidate == k {
			return i
		}
	}
	return 0
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.QuitMsg:
		m.quitting = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m checklistModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.NextPhase):
		m.jumpPhase(1)

	case key.Matches(msg, m.keymap.PrevPhase):
		m.jumpPhase(-1)

	case key.Matches(msg, m.keymap.Next):
		next, ok := m.list.Next()
		if !ok {
			m.scrollToCursor()
			return m.flash("every item is done")
		}
		m.cursor = m.keyIndex(next)

	case key.Matches(msg, m.keymap.Toggle):
		if len(m.keys) == 0 {
			return m, nil
		}
		prev := m.list.Toggle(m.ctx, m.keys[m.cursor])
		m.undo = append(m.undo, prev)
		if !m.list.Persisted() {
			return m.flash("progress could not be saved")
		}
		if m.list.Overall().Complete() {
			return m.flash("roadmap complete")
		}

	case key.Matches(msg, m.keymap.Undo):
		if len(m.undo) == 0 {
			return m.flash("nothing to undo")
		}
		last := m.undo[len(m.undo)-1]
		m.undo = m.undo[:len(m.undo)-1]
		m.list.Restore(m.ctx, last)
		if !m.list.Persisted() {
			return m.flash("progress could not be saved")
		}
		return m.flash("undone")
	}

	m.scrollToCursor()
	return m, nil
}

// jumpPhase moves the cursor to the first item of the next or previous
// phase that has items.
func (m *checklistModel) jumpPhase(dir int) {
	if len(m.keys) == 0 {
		return
	}
	current := m.keys[m.cursor].Phase
	if dir > 0 {
		for i := m.cursor; i < len(m.keys); i++ {
			if m.keys[i].Phase > current {
				m.cursor = i
				return
			}
		}
		return
	}
	target := -1
	for i := m.cursor; i >= 0; i-- {
		if m.keys[i].Phase < current {
			target = m.keys[i].Phase
			break
		}
	}
	if target < 0 {
		return
	}
	for i, k := range m.keys {
		if k.Phase == target {
			m.cursor = i
			return
		}
	}
}

func (m checklistModel) flash(text string) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// bodyHeight is the number of rows available between header and footer.
// Zero means unbounded.
func (m checklistModel) bodyHeight() int {
	if m.height == 0 {
		return 0
	}
	const chrome = 6 // title, progress, blank, blank, status, help
	return max(m.height-chrome, 3)
}

func (m *checklistModel) scrollToCursor() {
	h := m.bodyHeight()
	if h == 0 || len(m.keys) == 0 {
		m.offset = 0
		return
	}
	line := m.cursorRow()
	if line < m.offset {
		m.offset = line
		// Keep the phase heading in view when possible.
		for m.offset > 0 && m.rows[m.offset-1].kind != rowItem && line-m.offset < h-1 {
			m.offset--
		}
	}
	if line >= m.offset+h {
		m.offset = line - h + 1
	}
}

func (m checklistModel) cursorRow() int {
	for i, row := range m.rows {
		if row.kind == rowItem && row.item == m.cursor {
			return i
		}
	}
	return 0
}

var (
	cursorStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(formatter.ColorDim).Strikethrough(true)
)

func (m checklistModel) View() string {
	if m.quitting {
		return ""
	}

	r := m.list.Roadmap()
	var b strings.Builder
	overall := m.list.Overall()
	b.WriteString(formatter.StyleHeader.Render(r.Title))
	if r.Subtitle != "" {
		b.WriteString("  " + formatter.Dim(r.Subtitle))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n\n", formatter.RenderProgress(overall.Percent(), 30), formatter.Dim(fmt.Sprintf("%d/%d done", overall.Done, overall.Total)))

	if len(m.keys) == 0 {
		b.WriteString(formatter.Dim("This roadmap has no items.") + "\n")
	}

	end := len(m.rows)
	if h := m.bodyHeight(); h > 0 && m.offset+h < end {
		end = m.offset + h
	}
	for _, row := range m.rows[m.offset:end] {
		b.WriteString(m.renderRow(r, row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(formatter.StyleYellow.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m checklistModel) renderRow(r domain.Roadmap, row checklistRow) string {
	switch row.kind {
	case rowPhase:
		phase := r.Phases[row.phase]
		p := m.list.Phase(row.phase)
		title := fmt.Sprintf("Phase %d: %s", row.phase+1, phase.Title)
		if phase.Duration != "" {
			title += " " + formatter.Dim("("+phase.Duration+")")
		}
		return fmt.Sprintf("%s  %s %s", formatter.Bold(title), formatter.RenderCompactBar(p.Percent(), 10, !p.InProgress()), formatter.Dim(fmt.Sprintf("%d%%", p.Percent())))

	case rowGroup:
		g := r.Phases[row.phase].Groups[row.group]
		return "  " + formatter.ClassStyle(g.Class).Render(g.Name) + " " + formatter.Dim("· "+g.Class.Label())

	default:
		k := m.keys[row.item]
		label, _ := r.Item(k)
		text := domain.DisplayLabel(label)
		if m.width > 0 {
			text = formatter.Truncate(text, m.width-8)
		}
		mark := "[ ]"
		if m.list.IsDone(k) {
			mark = "[✔]"
			text = doneStyle.Render(text)
		}
		if row.item == m.cursor {
			return cursorStyle.Render("  > "+mark) + " " + text
		}
		return "    " + mark + " " + text
	}
}

// runChecklist runs the checklist view until the user quits.
func runChecklist(ctx context.Context, list *service.Checklist, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		newChecklistModel(ctx, list),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
