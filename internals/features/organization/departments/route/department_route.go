package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/features/organization/departments/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

// DepartmentUserRoutes: daftar departemen bisa dilihat semua anggota login.
func DepartmentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentController(db)

	departments := api.Group("/departments")
	departments.Get("/", ctrl.GetAllDepartments)
	departments.Get("/:id", ctrl.GetDepartmentByID)
}

func DepartmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDepartmentController(db)

	departments := api.Group("/departments",
		authmw.OnlyRoles(constants.RoleErrorAdmin("departemen"), constants.AdminOnly...))
	departments.Post("/", ctrl.CreateDepartment)
	departments.Patch("/:id", ctrl.UpdateDepartment)
	departments.Post("/:id/logo", ctrl.UploadLogo)
	departments.Delete("/:id", ctrl.DeleteDepartment)
}
