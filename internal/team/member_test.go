package team

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		member Member
		want   string
	}{
		{"full profile", Member{ID: "u1", Name: "Dana Reyes", Email: "dana@acme.io"}, "Dana Reyes"},
		{"email fallback", Member{ID: "u2", Email: "jordan.kim@acme.io"}, "jordan.kim"},
		{"email without at", Member{ID: "u3", Email: "broken-email"}, "broken-email"},
		{"bare id", Member{ID: "u4"}, "u4"},
	}
	for _, tt := range tests {
		if got := tt.member.DisplayName(); got != tt.want {
			t.Errorf("%s: DisplayName() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"Editor", RoleEditor},
		{" viewer ", RoleViewer},
		{"owner", RoleViewer},
		{"", RoleViewer},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoleCanReview(t *testing.T) {
	if !RoleAdmin.CanReview() || !RoleEditor.CanReview() {
		t.Error("admin and editor should be able to review")
	}
	if RoleViewer.CanReview() {
		t.Error("viewer should not be able to review")
	}
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry([]Member{
		{ID: "u1", Name: "Dana", Role: RoleAdmin},
		{ID: "u2", Email: "sam@acme.io", Role: RoleEditor},
	})

	if m, ok := reg.Lookup("u1"); !ok || m.Name != "Dana" {
		t.Errorf("Lookup(u1) = %+v, %v", m, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup(missing) should report not found")
	}

	// Resolve never fails; unknown IDs get a viewer placeholder.
	m := reg.Resolve("ghost")
	if m.ID != "ghost" || m.Role != RoleViewer {
		t.Errorf("Resolve(ghost) = %+v", m)
	}

	members := reg.Members()
	if len(members) != 2 || members[0].ID != "u1" || members[1].ID != "u2" {
		t.Errorf("Members() order = %+v", members)
	}
}
