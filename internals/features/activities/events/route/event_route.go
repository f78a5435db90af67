package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	"fkmb_backend/internals/features/activities/events/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

// EventUserRoutes: kalender kegiatan bisa dilihat semua anggota login.
func EventUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events")
	events.Get("/", ctrl.GetAllEvents)
	events.Get("/:id", ctrl.GetEventByID)
}

func EventAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events",
		authmw.OnlyRoles(constants.RoleErrorPengurus("kegiatan"), constants.PengurusAndAbove...))
	events.Post("/", ctrl.CreateEvent)
	events.Patch("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
}
