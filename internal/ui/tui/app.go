package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

type model struct {
	theme Theme
	deps  Deps

	focus   focus
	input   textinput.Model
	entries list.Model

	palette    domain.Palette
	hasPalette bool
	busy       bool
	toast      string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	if deps.Base == "" {
		deps.Base = domain.DefaultConfig().Defaults.Base
	}
	if !domain.ValidLocale(deps.Locale) {
		deps.Locale = domain.LocaleEnglish
	}
	if deps.SwatchWidth <= 0 {
		deps.SwatchWidth = domain.DefaultConfig().Render.SwatchWidth
	}

	in := textinput.New()
	in.Placeholder = "#rrggbb"
	in.Prompt = "Base › "
	in.CharLimit = 7
	in.Width = 10
	in.SetValue(string(deps.Base))
	in.Focus()

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Palette"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme:   t,
		deps:    deps,
		focus:   focusInput,
		input:   in,
		entries: l,
	}
}

// Init generates the palette of the starting base colour.
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdGenerate(m.deps, m.input.Value()))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.entries.SetSize(msg.Width-8, msg.Height-12)
		return m, nil

	case paletteGeneratedMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err) + ": " + clampString(msg.input, 16)
			return m, nil
		}
		m.toast = ""
		m.palette = msg.palette
		m.hasPalette = true
		m.input.SetValue(string(msg.palette.Base))
		cmd := m.entries.SetItems(paletteItems(m.theme, msg.palette, m.deps.Locale, m.deps.SwatchWidth))
		m.entries.Select(0)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.focus == focusList {
				return m.focusOn(focusInput), nil
			}
			return m, tea.Quit

		case "q":
			if m.focus == focusList {
				return m, tea.Quit
			}

		case "tab", "shift+tab":
			if m.focus == focusInput && m.hasPalette {
				return m.focusOn(focusList), nil
			}
			return m.focusOn(focusInput), nil

		case "enter":
			if m.busy {
				return m, nil
			}
			if m.focus == focusInput {
				m.busy = true
				return m, cmdGenerate(m.deps, m.input.Value())
			}
			it, ok := m.entries.SelectedItem().(entryItem)
			if !ok {
				return m, nil
			}
			m.busy = true
			m.input.SetValue(string(it.entry.Color))
			return m.focusOn(focusInput), cmdGenerate(m.deps, string(it.entry.Color))
		}
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.entries, cmd = m.entries.Update(msg)
	}
	return m, cmd
}

func (m model) focusOn(f focus) model {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("colorselect") + "\n" +
		m.theme.Subtitle.Render("Harmony palettes from one base colour") + "\n"

	base := m.input.View()
	if m.hasPalette {
		base += "  " + m.theme.Swatch(m.palette.Base, m.deps.SwatchWidth)
	}

	var body string
	if m.hasPalette {
		card := m.theme.Card
		if m.focus == focusList {
			card = card.BorderForeground(m.theme.FocusBorder)
		}
		body = card.Render(m.entries.View())
	} else {
		body = m.theme.Card.Render("Type a colour and press enter.")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	help := m.theme.Help.Render(m.helpLine())
	return wrap.Render(strings.Join([]string{header, base, "", body + toast, help}, "\n"))
}

func (m model) helpLine() string {
	var line string
	if m.focus == focusList {
		line = "↑/↓ select • enter use as base • esc/tab edit • q quit"
	} else {
		line = fmt.Sprintf("enter generate • tab palette • esc quit (%s)", m.deps.Locale)
	}
	if m.deps.Debug {
		line += " • debug logging on"
	}
	return line
}
