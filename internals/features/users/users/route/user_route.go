package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/features/users/users/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Post("/", authmw.RequirePermission(constants.PermUsersCreate), ctrl.CreateUser)
	users.Get("/", authmw.RequirePermission(constants.PermUsersRead), ctrl.GetAllUsers)
	users.Get("/:id", authmw.RequirePermission(constants.PermUsersRead), ctrl.GetUserByID)
	users.Patch("/:id", authmw.SelfOrRoles("id", constants.RoleAdmin), ctrl.UpdateUser)
	users.Post("/:id/avatar", authmw.SelfOrRoles("id", constants.RoleAdmin), ctrl.UploadAvatar)
	users.Delete("/:id", authmw.RequirePermission(constants.PermUsersDelete), ctrl.DeleteUser)
}
