package constants

// Tag kapabilitas per fitur, dipakai middleware RBAC.
const (
	PermUsersRead   = "users:read"
	PermUsersCreate = "users:create"
	PermUsersUpdate = "users:update"
	PermUsersDelete = "users:delete"

	PermRolesRead   = "roles:read"
	PermRolesCreate = "roles:create"
	PermRolesUpdate = "roles:update"
	PermRolesDelete = "roles:delete"

	PermDepartmentsRead   = "departments:read"
	PermDepartmentsCreate = "departments:create"
	PermDepartmentsUpdate = "departments:update"
	PermDepartmentsDelete = "departments:delete"

	PermMembershipsRead   = "memberships:read"
	PermMembershipsCreate = "memberships:create"
	PermMembershipsUpdate = "memberships:update"
	PermMembershipsDelete = "memberships:delete"

	PermEventsRead   = "events:read"
	PermEventsCreate = "events:create"
	PermEventsUpdate = "events:update"
	PermEventsDelete = "events:delete"

	PermAttendanceRead   = "attendance:read"
	PermAttendanceCreate = "attendance:create"
	PermAttendanceUpdate = "attendance:update"
	PermAttendanceDelete = "attendance:delete"

	PermCashRead   = "cash:read"
	PermCashCreate = "cash:create"
	PermCashUpdate = "cash:update"
	PermCashDelete = "cash:delete"

	PermArchivesRead   = "archives:read"
	PermArchivesCreate = "archives:create"
	PermArchivesUpdate = "archives:update"
	PermArchivesDelete = "archives:delete"
)

var allPermissions = []string{
	PermUsersRead, PermUsersCreate, PermUsersUpdate, PermUsersDelete,
	PermRolesRead, PermRolesCreate, PermRolesUpdate, PermRolesDelete,
	PermDepartmentsRead, PermDepartmentsCreate, PermDepartmentsUpdate, PermDepartmentsDelete,
	PermMembershipsRead, PermMembershipsCreate, PermMembershipsUpdate, PermMembershipsDelete,
	PermEventsRead, PermEventsCreate, PermEventsUpdate, PermEventsDelete,
	PermAttendanceRead, PermAttendanceCreate, PermAttendanceUpdate, PermAttendanceDelete,
	PermCashRead, PermCashCreate, PermCashUpdate, PermCashDelete,
	PermArchivesRead, PermArchivesCreate, PermArchivesUpdate, PermArchivesDelete,
}

// Pemetaan statis role → kapabilitas. Admin punya semuanya;
// pengecekan dilakukan fungsi murni, bukan refleksi runtime.
var RolePermissions = map[string][]string{
	RoleAdmin: allPermissions,
	RolePengurus: {
		PermUsersRead,
		PermDepartmentsRead,
		PermMembershipsRead,
		PermEventsRead, PermEventsCreate, PermEventsUpdate,
		PermAttendanceRead, PermAttendanceCreate, PermAttendanceUpdate,
		PermArchivesRead, PermArchivesCreate, PermArchivesUpdate,
	},
	RoleBendahara: {
		PermUsersRead,
		PermDepartmentsRead,
		PermEventsRead,
		PermCashRead, PermCashCreate, PermCashUpdate,
		PermArchivesRead, PermArchivesCreate,
	},
	RoleAnggota: {
		PermDepartmentsRead,
		PermEventsRead,
		PermAttendanceCreate,
		PermArchivesRead,
	},
}

// HasPermission cek apakah role punya kapabilitas tertentu. Admin selalu lolos.
func HasPermission(role, permission string) bool {
	if role == RoleAdmin {
		return true
	}
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
