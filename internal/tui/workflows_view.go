package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"revu/internal/approval"
)

// updateList handles key events in the main list view.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % len(tabs)
		m.cursor = 0
		m.refreshList()
		if w := m.selected(); w != nil {
			return m, m.loadDetailCmd(w.ID)
		}
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + len(tabs) - 1) % len(tabs)
		m.cursor = 0
		m.refreshList()
		if w := m.selected(); w != nil {
			return m, m.loadDetailCmd(w.ID)
		}
		return m, nil
	case "j", "down":
		if m.cursor < len(m.workflows)-1 {
			m.cursor++
			return m, m.loadDetailCmd(m.workflows[m.cursor].ID)
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			return m, m.loadDetailCmd(m.workflows[m.cursor].ID)
		}
		return m, nil
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil
	case "p":
		m.priority = nextPriorityFilter(m.priority)
		m.refreshList()
		return m, nil
	case "r":
		m.loading = true
		m.statusMsg = "refreshing..."
		return m, m.loadWorkflowsCmd()
	case "a":
		if w := m.selected(); w != nil {
			if w.Status.Terminal() {
				m.err = fmt.Sprintf("workflow %s is already %s", w.ID, w.Status)
				return m, nil
			}
			m.statusMsg = fmt.Sprintf("approving %s...", w.ID)
			return m, m.transitionCmd(w.ID, approval.ActionApproved, "")
		}
		return m, nil
	case "x":
		if w := m.selected(); w != nil {
			if w.Status.Terminal() {
				m.err = fmt.Sprintf("workflow %s is already %s", w.ID, w.Status)
				return m, nil
			}
			m.reasonForm = newReasonForm(actionReject, w.ID)
			m.state = viewReason
		}
		return m, nil
	case "c":
		if w := m.selected(); w != nil {
			if w.Status != approval.StatusPending {
				m.err = fmt.Sprintf("changes can only be requested while pending, workflow %s is %s", w.ID, w.Status)
				return m, nil
			}
			m.reasonForm = newReasonForm(actionRequestChanges, w.ID)
			m.state = viewReason
		}
		return m, nil
	case "m":
		if w := m.selected(); w != nil {
			m.reasonForm = newReasonForm(actionComment, w.ID)
			m.state = viewReason
		}
		return m, nil
	}
	return m, nil
}

// nextPriorityFilter cycles the priority filter: off, urgent, high, normal, low.
func nextPriorityFilter(p approval.Priority) approval.Priority {
	switch p {
	case "":
		return approval.PriorityUrgent
	case approval.PriorityUrgent:
		return approval.PriorityHigh
	case approval.PriorityHigh:
		return approval.PriorityNormal
	case approval.PriorityNormal:
		return approval.PriorityLow
	default:
		return ""
	}
}

func (m Model) View() string {
	if m.state == viewReason {
		return appStyle.Render(m.reasonForm.View())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(" revu ") + "  " + m.renderTabs())
	b.WriteString("\n\n")

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View() + "\n\n")
	}
	if m.priority != "" {
		b.WriteString(formHintStyle.Render("priority filter: "+string(m.priority)+" (p to cycle)") + "\n\n")
	}

	width := m.width - 4
	if width < 40 {
		width = 80
	}
	b.WriteString(m.renderPanels(width))

	if m.err != "" {
		b.WriteString("\n" + statusErrorStyle.Render("⚠ "+m.err))
	} else if m.statusMsg != "" {
		b.WriteString("\n" + formHintStyle.Render(m.statusMsg))
	}

	b.WriteString(helpStyle.Render("\n" + m.help.View(keys)))

	return appStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(tabs))
	counts := m.tabCounts()
	for i, tab := range tabs {
		label := fmt.Sprintf("%s (%d)", tabLabel(tab), counts[tab])
		if i == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) tabCounts() map[approval.Status]int {
	all := m.deps.Store.Workflows()
	counts := map[approval.Status]int{approval.StatusAll: len(all)}
	for _, w := range all {
		counts[w.Status]++
	}
	return counts
}

// renderPanels renders the workflow list on the left and the selected
// workflow's detail on the right.
func (m Model) renderPanels(width int) string {
	leftWidth := width / 2
	rightWidth := width - leftWidth - 2

	var left strings.Builder
	if len(m.workflows) == 0 {
		left.WriteString(formHintStyle.Render("  Nothing here. Press 'r' to refresh."))
	}
	for i, w := range m.workflows {
		prefix := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			prefix = "▸ "
			style = style.Foreground(primaryColor).Bold(true)
		}

		line := prefix + statusBadge(w.Status) + " " + truncate(w.Content, leftWidth-16)
		left.WriteString(style.Render(line))
		if w.Priority == approval.PriorityUrgent || w.Priority == approval.PriorityHigh {
			left.WriteString(" " + statusWarnStyle.Render("!"+string(w.Priority)))
		}
		if w.Overdue(time.Now()) {
			left.WriteString(" " + statusErrorStyle.Render("overdue"))
		}
		left.WriteString("\n")
		left.WriteString(formHintStyle.Render("    "+w.SubmittedBy.DisplayName()+" · "+w.SubmittedAt.Format("Jan 2 15:04")) + "\n")
	}

	right := m.renderDetail(rightWidth)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(leftWidth).Render(left.String()),
		lipgloss.NewStyle().Width(rightWidth).MarginLeft(2).Render(right),
	)
}

func (m Model) renderDetail(width int) string {
	w := m.selected()
	if w == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(detailLabelStyle.Render("Workflow "+w.ID) + "  " + statusBadge(w.Status) + "\n\n")
	b.WriteString(detailValueStyle.Render(truncate(w.Content, width*3)) + "\n\n")
	b.WriteString(fmt.Sprintf("Submitted by %s on %s\n", w.SubmittedBy.DisplayName(), w.SubmittedAt.Format("2006-01-02 15:04")))
	if w.ReviewedBy != nil && w.ReviewedAt != nil {
		b.WriteString(fmt.Sprintf("Reviewed by %s on %s\n", w.ReviewedBy.DisplayName(), w.ReviewedAt.Format("2006-01-02 15:04")))
	}
	if w.DueDate != nil {
		due := w.DueDate.Format("2006-01-02 15:04")
		if w.Overdue(time.Now()) {
			b.WriteString(statusErrorStyle.Render("Due "+due+" (overdue)") + "\n")
		} else {
			b.WriteString("Due " + due + "\n")
		}
	}

	if m.detailID == w.ID {
		b.WriteString("\n" + detailLabelStyle.Render("Comments") + "\n")
		if len(m.comments) == 0 {
			b.WriteString(formHintStyle.Render("  none") + "\n")
		}
		for _, c := range m.comments {
			b.WriteString(fmt.Sprintf("  %s (%s): %s\n",
				c.Author.DisplayName(), c.CreatedAt.Format("Jan 2 15:04"), truncate(c.Content, width-20)))
		}

		b.WriteString("\n" + detailLabelStyle.Render("Activity") + "\n")
		for _, a := range m.activities {
			b.WriteString(fmt.Sprintf("  %s  %s %s\n",
				a.Timestamp.Format("Jan 2 15:04"), a.Actor.DisplayName(), string(a.Action)))
		}
	}

	return b.String()
}

// statusBadge renders a colored status label.
func statusBadge(s approval.Status) string {
	switch s {
	case approval.StatusPending:
		return statusWarnStyle.Render("● pending")
	case approval.StatusApproved:
		return statusOkStyle.Render("● approved")
	case approval.StatusRejected:
		return statusErrorStyle.Render("● rejected")
	case approval.StatusChangesRequested:
		return statusInfoStyle.Render("● changes")
	default:
		return string(s)
	}
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
