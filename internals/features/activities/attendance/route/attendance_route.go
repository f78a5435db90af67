package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/features/activities/attendance/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

// AttendanceUserRoutes: endpoint yang boleh diakses semua anggota login.
func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	att := api.Group("/attendance")
	att.Post("/check-in", ctrl.CheckIn)
	att.Get("/me", ctrl.GetMyAttendance)
}

// AttendanceAdminRoutes: rekap dan koreksi oleh pengurus/admin.
func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	att := api.Group("/attendance",
		authmw.OnlyRoles(constants.RoleErrorPengurus("absensi"), constants.PengurusAndAbove...))
	att.Post("/manual", ctrl.CheckInManual)
	att.Get("/by-event/:event_id", ctrl.GetByEvent)
	att.Patch("/:id", ctrl.UpdateAttendance)
	att.Delete("/:id", ctrl.DeleteAttendance)
}
