package team

import "strings"

// Role represents a member's permission level within an organization.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ParseRole normalizes a role string, falling back to viewer for unknown values.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "editor":
		return RoleEditor
	default:
		return RoleViewer
	}
}

// CanReview reports whether a member with this role may approve or reject content.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleEditor
}

// Member identifies an actor in the review pipeline. Members are owned by the
// membership system; this package never mutates them.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
	OrgID string `json:"orgId,omitempty"`
}

// DisplayName returns the member's name, deriving one from the email
// local-part when no richer profile data is available.
func (m Member) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	if at := strings.Index(m.Email, "@"); at > 0 {
		return m.Email[:at]
	}
	if m.Email != "" {
		return m.Email
	}
	return m.ID
}

// Registry is a read-only lookup of team members for one organization scope.
type Registry struct {
	members map[string]Member
	order   []string
}

// NewRegistry builds a registry from a member list. Later entries with a
// duplicate ID replace earlier ones.
func NewRegistry(members []Member) *Registry {
	r := &Registry{members: make(map[string]Member, len(members))}
	for _, m := range members {
		if _, seen := r.members[m.ID]; !seen {
			r.order = append(r.order, m.ID)
		}
		r.members[m.ID] = m
	}
	return r
}

// Lookup returns the member with the given ID.
func (r *Registry) Lookup(id string) (Member, bool) {
	m, ok := r.members[id]
	return m, ok
}

// Resolve returns the member with the given ID, or a placeholder member when
// the profile is missing so callers always have something to attribute.
func (r *Registry) Resolve(id string) Member {
	if m, ok := r.members[id]; ok {
		return m
	}
	return Member{ID: id, Role: RoleViewer}
}

// Members returns all members in registration order.
func (r *Registry) Members() []Member {
	out := make([]Member, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.members[id])
	}
	return out
}
