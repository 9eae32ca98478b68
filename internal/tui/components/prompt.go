package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/tvshelf/internal/tui/styles"
)

// PromptResult reports how a key press left the prompt
type PromptResult int

const (
	PromptEditing PromptResult = iota
	PromptSubmitted
	PromptCancelled
)

// Prompt is a single-line text input shown inline above a list
type Prompt struct {
	active bool
	label  string
	input  textinput.Model
}

// NewPrompt creates an inactive prompt
func NewPrompt(label, placeholder string) Prompt {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 80
	ti.Width = 40
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Prompt{label: label, input: ti}
}

// Activate focuses the prompt, seeded with value
func (p *Prompt) Activate(value string) tea.Cmd {
	p.active = true
	p.input.SetValue(value)
	p.input.CursorEnd()
	return p.input.Focus()
}

// Deactivate blurs the prompt, keeping its value
func (p *Prompt) Deactivate() {
	p.active = false
	p.input.Blur()
}

// Active returns whether the prompt has focus
func (p Prompt) Active() bool {
	return p.active
}

// Value returns the current input value
func (p Prompt) Value() string {
	return p.input.Value()
}

// Update handles input events while active
func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd, PromptResult) {
	if !p.active {
		return p, nil, PromptEditing
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			p.Deactivate()
			return p, nil, PromptSubmitted
		case "esc":
			p.Deactivate()
			return p, nil, PromptCancelled
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd, PromptEditing
}

// View renders the label and input on one line
func (p Prompt) View() string {
	label := styles.DimStyle.Render(p.label + " ")
	if p.active {
		label = styles.AccentStyle.Bold(true).Render(p.label + " ")
	}
	return label + p.input.View()
}
