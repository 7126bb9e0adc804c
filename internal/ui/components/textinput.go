package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput is a small numeric field for typing an answer instead of
// picking it with the arrow keys.
type AnswerInput struct {
	Model textinput.Model
}

// NewAnswerInput creates a focused input accepting digits and a leading
// minus sign.
func NewAnswerInput(placeholder string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 4
	ti.Prompt = "› "
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init starts the cursor blink.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update drops keys that cannot be part of an integer.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		k := kmsg.String()
		if len(k) == 1 && (k[0] < '0' || k[0] > '9') && k != "-" {
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the typed text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}
