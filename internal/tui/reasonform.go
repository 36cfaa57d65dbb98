package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"revu/internal/approval"
)

type reasonAction int

const (
	actionReject reasonAction = iota
	actionRequestChanges
	actionComment
)

func (a reasonAction) activityAction() approval.ActivityAction {
	switch a {
	case actionReject:
		return approval.ActionRejected
	case actionRequestChanges:
		return approval.ActionChangesRequested
	default:
		return approval.ActionCommented
	}
}

func (a reasonAction) title() string {
	switch a {
	case actionReject:
		return "Reject workflow"
	case actionRequestChanges:
		return "Request changes"
	default:
		return "Add comment"
	}
}

func (a reasonAction) label() string {
	switch a {
	case actionReject:
		return "Reason"
	case actionRequestChanges:
		return "Feedback"
	default:
		return "Comment"
	}
}

// reasonFormModel collects the text a transition or comment requires.
type reasonFormModel struct {
	action     reasonAction
	workflowID string
	input      textinput.Model
	err        string
}

func newReasonForm(action reasonAction, workflowID string) reasonFormModel {
	ti := textinput.New()
	ti.Placeholder = "say why..."
	ti.CharLimit = 500
	ti.Focus()

	return reasonFormModel{
		action:     action,
		workflowID: workflowID,
		input:      ti,
	}
}

func (m reasonFormModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Update handles a key event. The second return is true when the form was
// submitted with valid input.
func (m reasonFormModel) Update(msg tea.KeyMsg) (reasonFormModel, bool, tea.Cmd) {
	if msg.String() == "enter" {
		if m.Value() == "" {
			m.err = m.action.label() + " is required"
			return m, false, nil
		}
		m.err = ""
		return m, true, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, false, cmd
}

func (m reasonFormModel) View() string {
	var b strings.Builder

	b.WriteString(detailLabelStyle.Render(m.action.title()+" "+m.workflowID) + "\n\n")
	b.WriteString(formLabelStyle.Render(m.action.label()) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if m.err != "" {
		b.WriteString(statusErrorStyle.Render("⚠ "+m.err) + "\n\n")
	}

	b.WriteString(formHintStyle.Render("enter to submit · esc to cancel"))
	return b.String()
}
