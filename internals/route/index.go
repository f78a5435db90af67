package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "fkmb_backend/internals/features/activities/attendance/route"
	tokenRoute "fkmb_backend/internals/features/activities/attendance_tokens/route"
	eventRoute "fkmb_backend/internals/features/activities/events/route"
	archiveRoute "fkmb_backend/internals/features/archives/route"
	dashboardRoute "fkmb_backend/internals/features/dashboard/route"
	financeRoute "fkmb_backend/internals/features/finance/route"
	departmentRoute "fkmb_backend/internals/features/organization/departments/route"
	membershipRoute "fkmb_backend/internals/features/organization/memberships/route"
	authRoute "fkmb_backend/internals/features/users/auth/route"
	roleRoute "fkmb_backend/internals/features/users/roles/route"
	userRoute "fkmb_backend/internals/features/users/users/route"
	authmw "fkmb_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH (publik + semi publik) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	// ===================== PRIVATE (USER) =====================
	// Semua anggota login: absensi, kalender kegiatan, arsip, struktur organisasi.
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authmw.AuthMiddleware())

	attendanceRoute.AttendanceUserRoutes(user, db)
	eventRoute.EventUserRoutes(user, db)
	departmentRoute.DepartmentUserRoutes(user, db)
	membershipRoute.MembershipUserRoutes(user, db)
	archiveRoute.ArchiveUserRoutes(user, db)

	// ===================== ADMIN / PENGURUS =====================
	// Guard role per fitur ada di masing-masing route (OnlyRoles / RequirePermission).
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authmw.AuthMiddleware())

	userRoute.UserRoutes(admin, db)
	roleRoute.RoleRoutes(admin, db)
	departmentRoute.DepartmentAdminRoutes(admin, db)
	membershipRoute.MembershipAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	tokenRoute.AttendanceTokenRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	financeRoute.FinanceRoutes(admin, db)
	archiveRoute.ArchiveAdminRoutes(admin, db)
	dashboardRoute.DashboardRoutes(admin, db)

	// ===================== STATIC =====================
	app.Static("/uploads", "./uploads")
}
