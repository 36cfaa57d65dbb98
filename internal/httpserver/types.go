package httpserver

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ReloadResponse reports the working set size after a reload
type ReloadResponse struct {
	Workflows int `json:"workflows"`
}

// MemberResponse represents one team member
type MemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// MemberListResponse represents the members list response
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}
