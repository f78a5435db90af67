package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/constants"
	periodctrl "fkmb_backend/internals/features/finance/cash_periods/controller"
	reportctrl "fkmb_backend/internals/features/finance/cash_reports/controller"
	trxctrl "fkmb_backend/internals/features/finance/cash_transactions/controller"
	authmw "fkmb_backend/internals/middlewares/auth"
)

// FinanceRoutes: seluruh modul kas hanya untuk bendahara/admin.
func FinanceRoutes(api fiber.Router, db *gorm.DB) {
	guard := authmw.OnlyRoles(constants.RoleErrorBendahara("kas"), constants.BendaharaAndAbove...)

	periods := api.Group("/cash-periods", guard)
	periodController := periodctrl.NewCashPeriodController(db)
	periods.Post("/", periodController.CreatePeriod)
	periods.Get("/", periodController.GetAllPeriods)
	periods.Get("/active", periodController.GetActivePeriod)
	periods.Get("/:id", periodController.GetPeriodByID)
	periods.Patch("/:id", periodController.UpdatePeriod)
	periods.Post("/:id/activate", periodController.ActivatePeriod)
	periods.Delete("/:id", periodController.DeletePeriod)

	transactions := api.Group("/cash-transactions", guard)
	trxController := trxctrl.NewCashTransactionController(db)
	transactions.Post("/", trxController.CreateTransaction)
	transactions.Get("/by-period/:period_id", trxController.GetByPeriod)
	transactions.Get("/balance/:period_id", trxController.GetBalance)
	transactions.Patch("/:id", trxController.UpdateTransaction)
	transactions.Delete("/:id", trxController.DeleteTransaction)

	reports := api.Group("/cash-reports", guard)
	reportController := reportctrl.NewCashReportController(db)
	reports.Post("/generate", reportController.GenerateReport)
	reports.Get("/", reportController.GetAllReports)
	reports.Get("/:id", reportController.GetReportByID)
	reports.Delete("/:id", reportController.DeleteReport)
}
