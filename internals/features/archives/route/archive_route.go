package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/features/archives/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

// ArchiveUserRoutes: baca arsip untuk semua role yang punya izin read.
func ArchiveUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArchiveController(db)

	archives := api.Group("/archives")
	archives.Get("/", authmw.RequirePermission(constants.PermArchivesRead), ctrl.GetAllArchives)
	archives.Get("/:id", authmw.RequirePermission(constants.PermArchivesRead), ctrl.GetArchiveByID)
}

func ArchiveAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArchiveController(db)

	archives := api.Group("/archives")
	archives.Post("/", authmw.RequirePermission(constants.PermArchivesCreate), ctrl.CreateArchive)
	archives.Patch("/:id", authmw.RequirePermission(constants.PermArchivesUpdate), ctrl.UpdateArchive)
	archives.Delete("/:id", authmw.RequirePermission(constants.PermArchivesDelete), ctrl.DeleteArchive)
}
