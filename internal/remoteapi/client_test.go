package remoteapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"revu/internal/approval"
	"revu/internal/team"
)

func TestGetWorkflows(t *testing.T) {
	submitted := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	reviewed := submitted.Add(3 * time.Hour)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/approvals" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("orgId"); got != "org1" {
			t.Errorf("orgId = %s", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("auth header = %s", got)
		}

		json.NewEncoder(w).Encode(workflowListResponse{Workflows: []wireWorkflow{
			{
				ID: "wf1", PostID: "p1", Content: "Launch teaser",
				Status: "pending", Priority: "high",
				SubmittedBy: wireMember{ID: "u1", Email: "sam@acme.io", Role: "editor"},
				SubmittedAt: submitted,
			},
			{
				ID: "wf2", PostID: "p2", Content: "Sale banner",
				Status:      "approved",
				SubmittedBy: wireMember{ID: "u1"},
				SubmittedAt: submitted,
				ReviewedBy:  &wireMember{ID: "u2", Name: "Dana", Role: "admin"},
				ReviewedAt:  &reviewed,
			},
			{
				// Half-set review data must be dropped, not surfaced.
				ID: "wf3", PostID: "p3", Content: "Broken record",
				Status:      "weird-status",
				SubmittedBy: wireMember{ID: "u1"},
				SubmittedAt: submitted,
				ReviewedAt:  &reviewed,
			},
		}})
	}))
	defer server.Close()

	client := New(server.URL, "tok123")
	workflows, err := client.GetWorkflows(context.Background(), approval.Scope{OrgID: "org1"})
	if err != nil {
		t.Fatalf("GetWorkflows failed: %v", err)
	}
	if len(workflows) != 3 {
		t.Fatalf("got %d workflows, want 3", len(workflows))
	}

	if workflows[0].Status != approval.StatusPending || workflows[0].Priority != approval.PriorityHigh {
		t.Errorf("workflows[0] = %+v", workflows[0])
	}
	if workflows[0].SubmittedBy.Role != team.RoleEditor {
		t.Errorf("submitter role = %s", workflows[0].SubmittedBy.Role)
	}

	if workflows[1].ReviewedBy == nil || workflows[1].ReviewedBy.Name != "Dana" {
		t.Errorf("workflows[1].ReviewedBy = %+v", workflows[1].ReviewedBy)
	}
	if workflows[1].ReviewedAt == nil || !workflows[1].ReviewedAt.Equal(reviewed) {
		t.Errorf("workflows[1].ReviewedAt = %v", workflows[1].ReviewedAt)
	}

	// Unknown status normalizes to pending; orphan reviewedAt is dropped.
	if workflows[2].Status != approval.StatusPending {
		t.Errorf("workflows[2].Status = %s, want pending", workflows[2].Status)
	}
	if workflows[2].ReviewedBy != nil || workflows[2].ReviewedAt != nil {
		t.Errorf("workflows[2] kept half-set review data: %+v", workflows[2])
	}
}

func TestApproveAndRejectPost(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody = map[string]string{}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL, "")

	if err := client.ApprovePost(context.Background(), "p1", "nice"); err != nil {
		t.Fatalf("ApprovePost failed: %v", err)
	}
	if gotPath != "/api/v1/posts/p1/approve" || gotBody["comment"] != "nice" {
		t.Errorf("approve: path=%s body=%v", gotPath, gotBody)
	}

	if err := client.RejectPost(context.Background(), "p2", "off brand"); err != nil {
		t.Fatalf("RejectPost failed: %v", err)
	}
	if gotPath != "/api/v1/posts/p2/reject" || gotBody["reason"] != "off brand" {
		t.Errorf("reject: path=%s body=%v", gotPath, gotBody)
	}
}

func TestErrorResponseSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(errorResponse{Error: "insufficient permissions"})
	}))
	defer server.Close()

	client := New(server.URL, "")
	err := client.ApprovePost(context.Background(), "p1", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "insufficient permissions") || !strings.Contains(got, "403") {
		t.Errorf("error = %q, want message and status", got)
	}
}

func TestGetCommentsInternalFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("internal"); got != "true" {
			t.Errorf("internal = %q, want true", got)
		}
		json.NewEncoder(w).Encode(commentListResponse{Comments: []approval.RawComment{
			{ID: "c1", PostID: "p1", AuthorID: "u1", Text: "hello", Internal: true},
		}})
	}))
	defer server.Close()

	client := New(server.URL, "")
	comments, err := client.GetComments(context.Background(), "p1", true)
	if err != nil {
		t.Fatalf("GetComments failed: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "hello" {
		t.Errorf("comments = %+v", comments)
	}
}

func TestGetMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(memberListResponse{Members: []wireMember{
			{ID: "u1", Name: "Dana", Email: "dana@acme.io", Role: "admin"},
			{ID: "u2", Email: "sam@acme.io", Role: "unknown-role"},
		}})
	}))
	defer server.Close()

	client := New(server.URL, "")
	members, err := client.GetMembers(context.Background(), "org1")
	if err != nil {
		t.Fatalf("GetMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	if members[0].Role != team.RoleAdmin || members[0].OrgID != "org1" {
		t.Errorf("members[0] = %+v", members[0])
	}
	if members[1].Role != team.RoleViewer {
		t.Errorf("unknown role should normalize to viewer, got %s", members[1].Role)
	}
}
