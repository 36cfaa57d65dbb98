package mcpserver

import (
	"context"
	"fmt"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"revu/internal/approval"
)

// -- workflow_list --

type workflowListInput struct {
	Status   string `json:"status,omitempty" jsonschema:"Filter by status: pending, approved, rejected, changes_requested, or all"`
	Query    string `json:"query,omitempty" jsonschema:"Case-insensitive search over content and submitter name"`
	Priority string `json:"priority,omitempty" jsonschema:"Filter by priority: urgent, high, normal, low"`
}

type workflowListOutput struct {
	Workflows []approval.Workflow `json:"workflows"`
	Total     int                 `json:"total"`
}

// -- workflow_get --

type workflowGetInput struct {
	ID string `json:"id" jsonschema:"Workflow ID"`
}

type workflowGetOutput struct {
	Workflow approval.Workflow `json:"workflow"`
}

// -- transitions --

type workflowApproveInput struct {
	ID      string `json:"id" jsonschema:"Workflow ID"`
	Comment string `json:"comment,omitempty" jsonschema:"Optional approval comment"`
}

type workflowRejectInput struct {
	ID     string `json:"id" jsonschema:"Workflow ID"`
	Reason string `json:"reason" jsonschema:"Rejection reason (required)"`
}

type workflowRequestChangesInput struct {
	ID       string `json:"id" jsonschema:"Workflow ID"`
	Feedback string `json:"feedback" jsonschema:"Feedback for the submitter (required)"`
}

type transitionOutput struct {
	Workflow approval.Workflow `json:"workflow"`
}

// -- comments and activity --

type workflowCommentInput struct {
	ID      string `json:"id" jsonschema:"Workflow ID"`
	Content string `json:"content" jsonschema:"Comment text"`
}

type workflowCommentOutput struct {
	Status string `json:"status"`
}

type workflowCommentsInput struct {
	ID string `json:"id" jsonschema:"Workflow ID"`
}

type workflowCommentsOutput struct {
	Comments []approval.Comment `json:"comments"`
}

type workflowActivityInput struct {
	ID string `json:"id" jsonschema:"Workflow ID"`
}

type workflowActivityOutput struct {
	Activities []approval.Activity `json:"activities"`
}

// -- stats --

type workflowStatsInput struct{}

type workflowStatsOutput struct {
	Stats approval.Stats `json:"stats"`
	Total int            `json:"total"`
}

// -- reload --

type workflowReloadInput struct{}

type workflowReloadOutput struct {
	Workflows int `json:"workflows"`
}

// toolset binds handlers to the shared backend.
type toolset struct {
	deps *Deps
}

func (t *toolset) listHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowListInput) (*mcpsdk.CallToolResult, workflowListOutput, error) {
	status := approval.Status(input.Status)
	if status == "" {
		status = approval.StatusAll
	}
	if status != approval.StatusAll && !approval.ValidStatus(status) {
		return nil, workflowListOutput{}, fmt.Errorf("unknown status %q", input.Status)
	}

	workflows := approval.FilterWorkflows(
		t.deps.Store.Workflows(),
		status,
		input.Query,
		approval.Priority(input.Priority),
	)
	return nil, workflowListOutput{Workflows: workflows, Total: len(workflows)}, nil
}

func (t *toolset) getHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowGetInput) (*mcpsdk.CallToolResult, workflowGetOutput, error) {
	if input.ID == "" {
		return nil, workflowGetOutput{}, fmt.Errorf("id is required")
	}
	wf, err := t.deps.Store.Get(input.ID)
	if err != nil {
		return nil, workflowGetOutput{}, err
	}
	return nil, workflowGetOutput{Workflow: wf}, nil
}

func (t *toolset) approveHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowApproveInput) (*mcpsdk.CallToolResult, transitionOutput, error) {
	if input.ID == "" {
		return nil, transitionOutput{}, fmt.Errorf("id is required")
	}
	if err := t.deps.Engine.Approve(ctx, input.ID, t.deps.Actor, input.Comment); err != nil {
		return nil, transitionOutput{}, err
	}
	return t.transitionResult(input.ID)
}

func (t *toolset) rejectHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowRejectInput) (*mcpsdk.CallToolResult, transitionOutput, error) {
	if input.ID == "" {
		return nil, transitionOutput{}, fmt.Errorf("id is required")
	}
	if err := t.deps.Engine.Reject(ctx, input.ID, t.deps.Actor, input.Reason); err != nil {
		return nil, transitionOutput{}, err
	}
	return t.transitionResult(input.ID)
}

func (t *toolset) requestChangesHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowRequestChangesInput) (*mcpsdk.CallToolResult, transitionOutput, error) {
	if input.ID == "" {
		return nil, transitionOutput{}, fmt.Errorf("id is required")
	}
	if err := t.deps.Engine.RequestChanges(ctx, input.ID, t.deps.Actor, input.Feedback); err != nil {
		return nil, transitionOutput{}, err
	}
	return t.transitionResult(input.ID)
}

func (t *toolset) transitionResult(id string) (*mcpsdk.CallToolResult, transitionOutput, error) {
	wf, err := t.deps.Store.Get(id)
	if err != nil {
		return nil, transitionOutput{}, err
	}
	return nil, transitionOutput{Workflow: wf}, nil
}

func (t *toolset) commentHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowCommentInput) (*mcpsdk.CallToolResult, workflowCommentOutput, error) {
	if input.ID == "" {
		return nil, workflowCommentOutput{}, fmt.Errorf("id is required")
	}
	if err := t.deps.Collab.AddComment(ctx, input.ID, t.deps.Actor, input.Content); err != nil {
		return nil, workflowCommentOutput{}, err
	}
	return nil, workflowCommentOutput{Status: "created"}, nil
}

func (t *toolset) commentsHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowCommentsInput) (*mcpsdk.CallToolResult, workflowCommentsOutput, error) {
	if input.ID == "" {
		return nil, workflowCommentsOutput{}, fmt.Errorf("id is required")
	}
	comments, err := t.deps.Collab.Comments(ctx, input.ID)
	if err != nil {
		return nil, workflowCommentsOutput{}, err
	}
	if comments == nil {
		comments = []approval.Comment{}
	}
	return nil, workflowCommentsOutput{Comments: comments}, nil
}

func (t *toolset) activityHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowActivityInput) (*mcpsdk.CallToolResult, workflowActivityOutput, error) {
	if input.ID == "" {
		return nil, workflowActivityOutput{}, fmt.Errorf("id is required")
	}
	activities, err := t.deps.Collab.Activities(input.ID)
	if err != nil {
		return nil, workflowActivityOutput{}, err
	}
	return nil, workflowActivityOutput{Activities: activities}, nil
}

func (t *toolset) statsHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowStatsInput) (*mcpsdk.CallToolResult, workflowStatsOutput, error) {
	stats := t.deps.Store.Stats()
	return nil, workflowStatsOutput{Stats: stats, Total: stats.Total()}, nil
}

func (t *toolset) reloadHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input workflowReloadInput) (*mcpsdk.CallToolResult, workflowReloadOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := t.deps.Store.Load(ctx, t.deps.Store.Scope()); err != nil {
		return nil, workflowReloadOutput{}, err
	}
	return nil, workflowReloadOutput{Workflows: len(t.deps.Store.Workflows())}, nil
}

// registerWorkflowTools registers approval workflow MCP tools.
func registerWorkflowTools(server *mcpsdk.Server, deps *Deps) {
	t := &toolset{deps: deps}

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_list",
		Description: "List approval workflows, optionally filtered by status, search query, and priority",
	}, t.listHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_get",
		Description: "Get one approval workflow by ID",
	}, t.getHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_approve",
		Description: "Approve a pending or changes-requested workflow, with an optional comment",
	}, t.approveHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_reject",
		Description: "Reject a pending or changes-requested workflow; a reason is required",
	}, t.rejectHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_request_changes",
		Description: "Send a pending workflow back to its submitter with required feedback",
	}, t.requestChangesHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_comment",
		Description: "Add an internal comment to a workflow's discussion thread",
	}, t.commentHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_comments",
		Description: "List a workflow's internal comment thread",
	}, t.commentsHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_activity",
		Description: "Get a workflow's audit trail of submissions, reviews, and comments",
	}, t.activityHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_stats",
		Description: "Get aggregate review stats: per-status counts, overdue count, and average review hours",
	}, t.statsHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "workflow_reload",
		Description: "Refetch the workflow working set from the dashboard backend",
	}, t.reloadHandler)
}
