package seeds

import (
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	rolemodel "fkmb_backend/internals/features/users/roles/model"
)

var roleDescriptions = map[string]string{
	constants.RoleAdmin:     "Akses penuh ke seluruh modul",
	constants.RolePengurus:  "Pengelola kegiatan, absensi, dan arsip",
	constants.RoleBendahara: "Pengelola kas dan laporan keuangan",
	constants.RoleAnggota:   "Anggota biasa, akses baca dan absensi",
}

// SeedRoles memastikan keempat role bawaan ada beserta daftar permission-nya.
// Role yang sudah ada dilewati supaya perubahan manual tidak tertimpa.
func SeedRoles(db *gorm.DB) error {
	for _, roleName := range constants.AllRoles {
		var existing rolemodel.RoleModel
		if err := db.Where("role_name = ?", roleName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Role '%s' sudah ada, dilewati.", roleName)
			continue
		}

		perms, err := json.Marshal(constants.RolePermissions[roleName])
		if err != nil {
			return err
		}

		role := rolemodel.RoleModel{
			RoleName:        roleName,
			RoleDescription: roleDescriptions[roleName],
			RolePermissions: datatypes.JSON(perms),
		}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
		log.Printf("✅ Role '%s' berhasil dibuat.", roleName)
	}
	return nil
}
