package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	promptLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// PromptResult is what the player entered before a session.
type PromptResult struct {
	Player    string
	Message   string
	Cancelled bool
}

// PromptModel asks for the player's name and an optional victory message.
type PromptModel struct {
	inputs  []textinput.Model
	focus   int
	result  PromptResult
	done    bool
	width   int
	height  int
	message string // Default victory message shown as placeholder
}

// NewPromptModel creates the prompt. defaultMessage is used when the message
// field is left empty.
func NewPromptModel(defaultMessage string) PromptModel {
	name := textinput.New()
	name.Placeholder = "anonymous"
	name.CharLimit = 32
	name.Width = 32
	name.Focus()

	msg := textinput.New()
	msg.Placeholder = defaultMessage
	msg.CharLimit = 140
	msg.Width = 48

	return PromptModel{
		inputs:  []textinput.Model{name, msg},
		message: defaultMessage,
	}
}

// Init starts the cursor blink.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.result.Cancelled = true
			m.done = true
			return m, tea.Quit
		case "tab", "down", "shift+tab", "up":
			return m, m.setFocus(1 - m.focus)
		case "enter":
			if m.focus == 0 {
				return m, m.setFocus(1)
			}
			m.result = m.collect()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PromptModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// collect turns the field values into a result, applying defaults.
func (m PromptModel) collect() PromptResult {
	r := PromptResult{
		Player:  strings.TrimSpace(m.inputs[0].Value()),
		Message: strings.TrimSpace(m.inputs[1].Value()),
	}
	if r.Message == "" {
		r.Message = m.message
	}
	return r
}

// Result returns the entered values once the prompt has finished.
func (m PromptModel) Result() PromptResult {
	return m.result
}

// View renders the prompt.
func (m PromptModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptTitleStyle.Render("MAZE PURSUIT"))
	b.WriteString("\n\n")
	b.WriteString(promptLabelStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(promptLabelStyle.Render("Victory message"))
	b.WriteString("\n")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: switch field • enter: continue • esc: quit"))

	content := b.String()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// RunPrompt shows the prompt and returns what was entered.
func RunPrompt(defaultMessage string) (PromptResult, error) {
	p := tea.NewProgram(NewPromptModel(defaultMessage), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return PromptResult{}, err
	}
	return final.(PromptModel).Result(), nil
}
