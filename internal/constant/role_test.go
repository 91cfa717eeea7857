package constant

import "testing"

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       UserRole
		permission Permission
		want       bool
	}{
		{"admin can delete certifications", RoleAdmin, CertificationDelete, true},
		{"inspector can start inspections", RoleInspector, InspectionStart, true},
		{"inspector cannot certify", RoleInspector, CertificationIssue, false},
		{"engineer can reject", RoleEngineer, CertificationReject, true},
		{"engineer cannot start inspections", RoleEngineer, InspectionStart, false},
		{"client can only read", RoleClient, DoorRead, true},
		{"client cannot update checks", RoleClient, CheckUpdate, false},
		{"unknown role has nothing", UserRole("ghost"), DoorRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.permission); got != tt.want {
				t.Errorf("HasPermission(%s, %s) = %v, want %v", tt.role, tt.permission, got, tt.want)
			}
		})
	}
}

func TestUserRoleValid(t *testing.T) {
	for _, role := range []UserRole{RoleAdmin, RoleInspector, RoleEngineer, RoleClient} {
		if !role.Valid() {
			t.Errorf("%s should be valid", role)
		}
	}
	if UserRole("supervisor").Valid() {
		t.Errorf("unknown role should be invalid")
	}
}
