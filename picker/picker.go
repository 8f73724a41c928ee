package picker

import (
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// ErrCancelled is returned when the user leaves the picker without choosing.
var ErrCancelled = errors.New("selection cancelled")

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#6BCB77"))

type option struct {
	index int
	label string
}

func (o option) Title() string       { return o.label }
func (o option) Description() string { return "" }
func (o option) FilterValue() string { return o.label }

// Model is a single-choice list. Choice is -1 until an option is picked.
type Model struct {
	list      list.Model
	Choice    int
	Cancelled bool
}

// New creates a picker listing `options` in order.
func New(title string, options []string) Model {
	items := make([]list.Item, len(options))
	for i, label := range options {
		items[i] = option{index: i, label: label}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	l := list.New(items, delegate, 80, 20)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return Model{list: l, Choice: -1}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.Cancelled = true
			return m, tea.Quit
		case "enter":
			if selected, ok := m.list.SelectedItem().(option); ok {
				m.Choice = selected.index
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

// Choose lets the user pick one of `options` and returns its index. A single option is
// returned without asking.
func Choose(title string, options []string) (int, error) {
	switch len(options) {
	case 0:
		return -1, errors.New("nothing to choose from")
	case 1:
		return 0, nil
	}

	final, err := tea.NewProgram(New(title, options), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return -1, errors.Wrap(err, "picker failed")
	}
	m := final.(Model)
	if m.Cancelled || m.Choice < 0 {
		return -1, ErrCancelled
	}
	return m.Choice, nil
}
