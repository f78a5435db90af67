package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		permission string
		want       bool
	}{
		{"admin selalu lolos", RoleAdmin, PermRolesDelete, true},
		{"admin lolos untuk permission tak dikenal", RoleAdmin, "nonexistent:perm", true},
		{"pengurus boleh kelola kegiatan", RolePengurus, PermEventsCreate, true},
		{"pengurus boleh kelola absensi", RolePengurus, PermAttendanceUpdate, true},
		{"pengurus tidak boleh hapus kegiatan", RolePengurus, PermEventsDelete, false},
		{"pengurus tidak boleh kelola kas", RolePengurus, PermCashCreate, false},
		{"bendahara boleh kelola kas", RoleBendahara, PermCashCreate, true},
		{"bendahara tidak boleh hapus kas", RoleBendahara, PermCashDelete, false},
		{"bendahara tidak boleh kelola absensi", RoleBendahara, PermAttendanceCreate, false},
		{"anggota boleh absen", RoleAnggota, PermAttendanceCreate, true},
		{"anggota boleh baca arsip", RoleAnggota, PermArchivesRead, true},
		{"anggota tidak boleh baca user", RoleAnggota, PermUsersRead, false},
		{"role tak dikenal ditolak", "tamu", PermEventsRead, false},
		{"role kosong ditolak", "", PermEventsRead, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestRolePermissionsOnlyKnownPermissions(t *testing.T) {
	known := map[string]bool{}
	for _, p := range allPermissions {
		known[p] = true
	}
	for role, perms := range RolePermissions {
		for _, p := range perms {
			assert.Truef(t, known[p], "role %s memuat permission asing: %s", role, p)
		}
	}
}

func TestEveryRoleHasPermissionList(t *testing.T) {
	for _, role := range AllRoles {
		_, ok := RolePermissions[role]
		assert.Truef(t, ok, "role %s tidak punya daftar permission", role)
	}
}
