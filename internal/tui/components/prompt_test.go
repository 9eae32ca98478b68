package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestPromptSubmit(t *testing.T) {
	p := NewPrompt("Search", "show name")
	p.Activate("fri")
	assert.True(t, p.Active())

	p, _, res := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ends")})
	assert.Equal(t, PromptEditing, res)

	p, _, res = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, PromptSubmitted, res)
	assert.False(t, p.Active())
	assert.Equal(t, "friends", p.Value())
}

func TestPromptCancelKeepsValue(t *testing.T) {
	p := NewPrompt("Find", "")
	p.Activate("lost")

	p, _, res := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, PromptCancelled, res)
	assert.False(t, p.Active())
	assert.Equal(t, "lost", p.Value())
}

func TestInactivePromptIgnoresKeys(t *testing.T) {
	p := NewPrompt("Find", "")
	p, _, res := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, PromptEditing, res)
	assert.Empty(t, p.Value())
}
