package seeds

import "gorm.io/gorm"

// Run menjalankan semua seeder bawaan secara berurutan.
// Semua seeder idempotent, aman dipanggil di setiap startup.
func Run(db *gorm.DB) error {
	if err := SeedRoles(db); err != nil {
		return err
	}
	return SeedAdminUser(db)
}
