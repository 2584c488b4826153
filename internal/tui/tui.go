// Package tui is the interactive browser behind `ihft browse`.
package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/ihft/internal/dispatch"
	"github.com/Makepad-fr/ihft/internal/model"
	"github.com/Makepad-fr/ihft/internal/ui"
)

// Actions is what the browser needs from the dispatcher.
type Actions interface {
	List() []string
	Add(item string) error
	Remove(item string) error
	Pick() (string, error)
	Undo() (model.Record, error)
}

// thingItem adapts a thing to bubbles/list.Item
type thingItem string

func (i thingItem) Title() string       { return string(i) }
func (i thingItem) Description() string { return "" }
func (i thingItem) FilterValue() string { return string(i) }

var keys = struct {
	pick, remove, add, undo, quit key.Binding
}{
	pick:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "pick random")),
	remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
	add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model of the browser.
type Model struct {
	list list.Model
	acts Actions

	// Inline add
	adding bool
	ti     textinput.Model

	status    string
	statusErr bool
	picked    string
	hasPicked bool
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(thingItem)
	t := ui.Current()
	prefix := "  "
	text := string(it)
	if index == m.Index() {
		prefix = t.Accent.Render(t.SymPrompt)
		text = t.Title.Render(text)
	}
	fmt.Fprint(w, prefix+t.Muted.Render(t.SymBullet)+" "+text)
}

// New builds the browser over acts and loads the current things.
func New(acts Actions) Model {
	l := list.New(nil, itemDelegate{}, 60, 20)
	l.Title = "Things"
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("thing", "things")
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "

	// Extend help with our bindings
	extra := func() []key.Binding {
		return []key.Binding{keys.pick, keys.remove, keys.add, keys.undo}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = ui.Current().SymPrompt
	ti.Placeholder = "New thing..."
	ti.CharLimit = 200

	m := Model{list: l, acts: acts, ti: ti}
	m.reload()
	return m
}

// Run starts the browser and returns its final state.
func Run(acts Actions, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(New(acts), opts...).Run()
	if err != nil {
		return Model{}, err
	}
	fm, _ := final.(Model)
	return fm, nil
}

// Picked returns the last thing picked during the session. ok is false when
// nothing was picked.
func (m Model) Picked() (thing string, ok bool) { return m.picked, m.hasPicked }

// Status returns the last status line.
func (m Model) Status() string { return m.status }

// Things returns the things currently shown.
func (m Model) Things() []string {
	out := make([]string, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		out = append(out, string(it.(thingItem)))
	}
	return out
}

func (m *Model) reload() {
	things := m.acts.List()
	items := make([]list.Item, 0, len(things))
	for _, t := range things {
		items = append(items, thingItem(t))
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *Model) report(msg string, err error) {
	if err != nil {
		m.status, m.statusErr = err.Error(), true
		return
	}
	m.status, m.statusErr = msg, false
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-5)
		return m, nil

	case tea.KeyMsg:
		fs := m.list.FilterState()
		if fs == list.Filtering || (fs == list.FilterApplied && msg.Type == tea.KeyEsc) {
			break
		}
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit

		case key.Matches(msg, keys.pick):
			item, err := m.acts.Pick()
			if err == nil || errors.Is(err, dispatch.ErrHistoryWrite) {
				m.picked, m.hasPicked = item, true
			}
			m.report("picked: "+item, err)
			m.reload()
			return m, nil

		case key.Matches(msg, keys.remove):
			it, ok := m.list.SelectedItem().(thingItem)
			if !ok {
				return m, nil
			}
			m.report("removed: "+string(it), m.acts.Remove(string(it)))
			m.reload()
			return m, nil

		case key.Matches(msg, keys.undo):
			r, err := m.acts.Undo()
			m.report("undone: "+r.String(), err)
			m.reload()
			return m, nil

		case key.Matches(msg, keys.add):
			m.adding = true
			m.ti.SetValue("")
			cmd := m.ti.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.Type {
		case tea.KeyEnter:
			m.adding = false
			m.ti.Blur()
			// Whitespace is kept; an empty thing is a no-op.
			if thing := m.ti.Value(); thing != "" {
				m.report("added: "+thing, m.acts.Add(thing))
				m.reload()
			}
			return m, nil
		case tea.KeyEsc:
			m.adding = false
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	t := ui.Current()
	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		content += "\n" + bar.Render("Add a thing\n"+m.ti.View())
	}
	if m.status != "" {
		style := t.Success
		if m.statusErr {
			style = t.Error
		}
		content += "\n" + style.Render(m.status)
	}
	return ui.PanelString(content)
}
