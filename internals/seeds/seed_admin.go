package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	authservice "fkmb_backend/internals/features/users/auth/service"
	rolemodel "fkmb_backend/internals/features/users/roles/model"
	usermodel "fkmb_backend/internals/features/users/users/model"
)

// SeedAdminUser membuat akun admin pertama dari env ADMIN_EMAIL / ADMIN_PASSWORD.
// Dilewati kalau env kosong atau email sudah terdaftar.
func SeedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ℹ️ ADMIN_EMAIL/ADMIN_PASSWORD tidak diset, seed admin dilewati.")
		return nil
	}

	var existing usermodel.UserModel
	if err := db.Where("user_email = ?", email).First(&existing).Error; err == nil {
		log.Printf("ℹ️ Admin '%s' sudah ada, dilewati.", email)
		return nil
	}

	var adminRole rolemodel.RoleModel
	if err := db.Where("role_name = ?", constants.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	hashed, err := authservice.HashPassword(password)
	if err != nil {
		return err
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	admin := usermodel.UserModel{
		UserEmail:    email,
		UserPassword: hashed,
		UserName:     name,
		UserRoleID:   &adminRole.RoleID,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin '%s' berhasil dibuat.", email)
	return nil
}
