package constants

import "fmt"

// Nama role bawaan (di-seed ke tabel roles, tidak dibuat lewat API)
const (
	RoleAdmin     = "admin"
	RolePengurus  = "pengurus"
	RoleBendahara = "bendahara"
	RoleAnggota   = "anggota"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyPengurusCanAccess  = "❌ Hanya pengurus atau admin yang boleh mengakses fitur %s."
	ErrOnlyBendaharaCanAccess = "❌ Hanya bendahara atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorPengurus(feature string) string {
	return fmt.Sprintf(ErrOnlyPengurusCanAccess, feature)
}

func RoleErrorBendahara(feature string) string {
	return fmt.Sprintf(ErrOnlyBendaharaCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RolePengurus,
		RoleBendahara,
		RoleAnggota,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	PengurusAndAbove = []string{
		RolePengurus,
		RoleAdmin,
	}

	BendaharaAndAbove = []string{
		RoleBendahara,
		RoleAdmin,
	}
)
