package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"revu/internal/approval"
	"revu/internal/team"
)

// DefaultTimeout bounds every remote call so a hung backend surfaces as a
// fetch failure instead of a stuck UI.
const DefaultTimeout = 15 * time.Second

// Client talks to the dashboard backend, implementing the approval.Remote
// boundary plus team member lookup.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New creates a client for the given base URL and bearer token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// GetWorkflows fetches all approval workflows for the scope.
func (c *Client) GetWorkflows(ctx context.Context, scope approval.Scope) ([]approval.Workflow, error) {
	q := url.Values{}
	q.Set("orgId", scope.OrgID)
	if scope.CompanyID != "" {
		q.Set("companyId", scope.CompanyID)
	}
	if scope.ProductID != "" {
		q.Set("productId", scope.ProductID)
	}

	var resp workflowListResponse
	if err := c.get(ctx, "/api/v1/approvals?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	workflows := make([]approval.Workflow, 0, len(resp.Workflows))
	for _, ww := range resp.Workflows {
		workflows = append(workflows, ww.toWorkflow())
	}
	return workflows, nil
}

// ApprovePost marks a post approved on the backend.
func (c *Client) ApprovePost(ctx context.Context, postID, comment string) error {
	body := approveRequest{Comment: comment}
	return c.post(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/approve", body, nil)
}

// RejectPost marks a post rejected on the backend.
func (c *Client) RejectPost(ctx context.Context, postID, reason string) error {
	body := rejectRequest{Reason: reason}
	return c.post(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/reject", body, nil)
}

// GetComments fetches comments for a post.
func (c *Client) GetComments(ctx context.Context, postID string, internalOnly bool) ([]approval.RawComment, error) {
	path := "/api/v1/posts/" + url.PathEscape(postID) + "/comments"
	if internalOnly {
		path += "?internal=true"
	}

	var resp commentListResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// CreateComment appends a comment to a post.
func (c *Client) CreateComment(ctx context.Context, postID, text string, internalOnly bool) error {
	body := createCommentRequest{Text: text, Internal: internalOnly}
	return c.post(ctx, "/api/v1/posts/"+url.PathEscape(postID)+"/comments", body, nil)
}

// GetMembers fetches the team member roster for an organization.
func (c *Client) GetMembers(ctx context.Context, orgID string) ([]team.Member, error) {
	q := url.Values{}
	q.Set("orgId", orgID)

	var resp memberListResponse
	if err := c.get(ctx, "/api/v1/members?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	members := make([]team.Member, 0, len(resp.Members))
	for _, wm := range resp.Members {
		members = append(members, team.Member{
			ID:    wm.ID,
			Name:  wm.Name,
			Email: wm.Email,
			Role:  team.ParseRole(wm.Role),
			OrgID: orgID,
		})
	}
	return members, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", req.Method, req.URL.Path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
