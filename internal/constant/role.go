package constant

// UserRole is the workshop role attached to an account. Every lifecycle
// operation is gated on one or more roles.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleInspector UserRole = "inspector"
	RoleEngineer  UserRole = "engineer"
	RoleClient    UserRole = "client"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleInspector, RoleEngineer, RoleClient:
		return true
	}
	return false
}

type Permission string

const (
	DoorCreate          Permission = "door:create"
	DoorRead            Permission = "door:read"
	InspectionStart     Permission = "inspection:start"
	InspectionComplete  Permission = "inspection:complete"
	InspectionDelete    Permission = "inspection:delete"
	CheckUpdate         Permission = "check:update"
	CertificationReview Permission = "certification:review"
	CertificationIssue  Permission = "certification:issue"
	CertificationReject Permission = "certification:reject"
	CertificationDelete Permission = "certification:delete"
	ChecklistManage     Permission = "checklist:manage"
	UserManage          Permission = "user:manage"
	PurchaseOrderManage Permission = "po:manage"
)

var rolePermissions = map[UserRole][]Permission{
	RoleAdmin: {
		DoorCreate, DoorRead,
		InspectionStart, InspectionComplete, InspectionDelete, CheckUpdate,
		CertificationReview, CertificationIssue, CertificationReject, CertificationDelete,
		ChecklistManage, UserManage, PurchaseOrderManage,
	},
	RoleInspector: {
		DoorRead,
		InspectionStart, InspectionComplete, CheckUpdate,
	},
	RoleEngineer: {
		DoorRead,
		CertificationReview, CertificationIssue, CertificationReject,
	},
	RoleClient: {
		DoorRead,
	},
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role UserRole, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
