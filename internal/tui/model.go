package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"revu/internal/approval"
	"revu/internal/team"
)

type viewState int

const (
	viewList   viewState = iota
	viewReason           // collecting a reason/feedback/comment before acting
)

// tabs is the fixed order of the status tabs.
var tabs = []approval.Status{
	approval.StatusPending,
	approval.StatusChangesRequested,
	approval.StatusApproved,
	approval.StatusRejected,
	approval.StatusAll,
}

func tabLabel(s approval.Status) string {
	switch s {
	case approval.StatusPending:
		return "Pending"
	case approval.StatusChangesRequested:
		return "Changes"
	case approval.StatusApproved:
		return "Approved"
	case approval.StatusRejected:
		return "Rejected"
	default:
		return "All"
	}
}

// Deps carries the review backend the TUI operates on.
type Deps struct {
	Store  *approval.Store
	Engine *approval.Engine
	Collab *approval.Collab
	Actor  team.Member
	Scope  approval.Scope
}

// Model is the main TUI model.
type Model struct {
	deps  Deps
	state viewState

	tab       int
	cursor    int
	workflows []approval.Workflow

	searchInput textinput.Model
	searching   bool
	priority    approval.Priority

	comments   []approval.Comment
	activities []approval.Activity
	detailID   string // workflow the loaded comments/activity belong to

	reasonForm reasonFormModel

	help      help.Model
	width     int
	height    int
	err       string
	statusMsg string
	loading   bool
}

// workflowsLoadedMsg is sent after reloading the working set.
type workflowsLoadedMsg struct{ err error }

// detailLoadedMsg carries a workflow's comments and activity trail.
type detailLoadedMsg struct {
	id         string
	comments   []approval.Comment
	activities []approval.Activity
	err        error
}

// transitionDoneMsg is sent after an approve/reject/request-changes attempt.
type transitionDoneMsg struct {
	id     string
	action approval.ActivityAction
	err    error
}

// commentAddedMsg is sent after posting a comment.
type commentAddedMsg struct {
	id  string
	err error
}

// refreshTickMsg triggers a periodic working set refresh.
type refreshTickMsg struct{}

func refreshTick() tea.Cmd {
	return tea.Tick(60*time.Second, func(t time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// NewModel creates the initial TUI model.
func NewModel(deps Deps) Model {
	si := textinput.New()
	si.Placeholder = "search content or submitter"
	si.CharLimit = 100

	m := Model{
		deps:        deps,
		state:       viewList,
		searchInput: si,
		help:        help.New(),
	}
	m.refreshList()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadWorkflowsCmd(), refreshTick())
}

// refreshList rebuilds the visible workflow slice from the store using the
// current tab, search, and priority filter.
func (m *Model) refreshList() {
	filtered := approval.FilterWorkflows(
		m.deps.Store.Workflows(),
		tabs[m.tab],
		m.searchInput.Value(),
		m.priority,
	)
	m.workflows = approval.SortByPriority(filtered)
	if m.cursor >= len(m.workflows) {
		m.cursor = len(m.workflows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() *approval.Workflow {
	if m.cursor < len(m.workflows) {
		return &m.workflows[m.cursor]
	}
	return nil
}

func (m Model) loadWorkflowsCmd() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return workflowsLoadedMsg{err: deps.Store.Load(ctx, deps.Scope)}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		comments, err := deps.Collab.Comments(ctx, id)
		activities, actErr := deps.Collab.Activities(id)
		if err == nil {
			err = actErr
		}
		return detailLoadedMsg{id: id, comments: comments, activities: activities, err: err}
	}
}

func (m Model) transitionCmd(id string, action approval.ActivityAction, note string) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		switch action {
		case approval.ActionApproved:
			err = deps.Engine.Approve(ctx, id, deps.Actor, note)
		case approval.ActionRejected:
			err = deps.Engine.Reject(ctx, id, deps.Actor, note)
		case approval.ActionChangesRequested:
			err = deps.Engine.RequestChanges(ctx, id, deps.Actor, note)
		}
		return transitionDoneMsg{id: id, action: action, err: err}
	}
}

func (m Model) addCommentCmd(id, content string) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return commentAddedMsg{id: id, err: deps.Collab.AddComment(ctx, id, deps.Actor, content)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width - 4
		return m, nil

	case workflowsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = fmt.Sprintf("refresh failed: %v", msg.err)
		} else {
			m.err = ""
			m.statusMsg = fmt.Sprintf("loaded %d workflows", len(m.deps.Store.Workflows()))
		}
		m.refreshList()
		var cmd tea.Cmd
		if w := m.selected(); w != nil {
			cmd = m.loadDetailCmd(w.ID)
		}
		return m, cmd

	case detailLoadedMsg:
		if w := m.selected(); w != nil && w.ID == msg.id {
			m.detailID = msg.id
			m.comments = msg.comments
			m.activities = msg.activities
			if msg.err != nil {
				m.err = fmt.Sprintf("load detail: %v", msg.err)
			}
		}
		return m, nil

	case transitionDoneMsg:
		if msg.err != nil {
			m.err = fmt.Sprintf("%s failed: %v", msg.action, msg.err)
			return m, nil
		}
		m.err = ""
		m.statusMsg = fmt.Sprintf("workflow %s: %s", msg.id, msg.action)
		m.refreshList()
		return m, m.loadDetailCmd(msg.id)

	case commentAddedMsg:
		if msg.err != nil {
			m.err = fmt.Sprintf("comment failed: %v", msg.err)
			return m, nil
		}
		m.err = ""
		m.statusMsg = "comment added"
		return m, m.loadDetailCmd(msg.id)

	case refreshTickMsg:
		return m, tea.Batch(m.loadWorkflowsCmd(), refreshTick())

	case tea.KeyMsg:
		if m.state == viewReason {
			return m.updateReason(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// updateSearch handles key events while the search input has focus.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.searchInput.Blur()
		if msg.String() == "esc" {
			m.searchInput.SetValue("")
		}
		m.refreshList()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refreshList()
	return m, cmd
}

// Run starts the TUI application.
func Run(deps Deps) error {
	m := NewModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// updateReason routes key events to the reason form.
func (m Model) updateReason(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.state = viewList
		return m, nil
	}

	form, submitted, cmd := m.reasonForm.Update(msg)
	m.reasonForm = form
	if !submitted {
		return m, cmd
	}

	m.state = viewList
	note := m.reasonForm.Value()
	id := m.reasonForm.workflowID

	if m.reasonForm.action == actionComment {
		return m, m.addCommentCmd(id, note)
	}
	return m, m.transitionCmd(id, m.reasonForm.action.activityAction(), note)
}
