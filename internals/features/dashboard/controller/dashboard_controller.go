package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	attendancemodel "fkmb_backend/internals/features/activities/attendance/model"
	eventmodel "fkmb_backend/internals/features/activities/events/model"
	periodmodel "fkmb_backend/internals/features/finance/cash_periods/model"
	usermodel "fkmb_backend/internals/features/users/users/model"
	helper "fkmb_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// 🟢 GET /api/a/dashboard
// Ringkasan untuk halaman utama admin: counter anggota/kegiatan,
// check-in hari ini, saldo periode aktif, dan breakdown per status.
func (ctrl *DashboardController) GetSummary(c *fiber.Ctx) error {
	var totalMembers int64
	if err := ctrl.DB.Model(&usermodel.UserModel{}).
		Where("user_is_active = ?", true).
		Count(&totalMembers).Error; err != nil {
		return apperrors.Internal("Gagal menghitung anggota", err)
	}

	var totalEvents int64
	if err := ctrl.DB.Model(&eventmodel.EventModel{}).Count(&totalEvents).Error; err != nil {
		return apperrors.Internal("Gagal menghitung kegiatan", err)
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	var todayCheckIns int64
	if err := ctrl.DB.Model(&attendancemodel.AttendanceModel{}).
		Where("attendance_check_in_time >= ?", startOfDay).
		Count(&todayCheckIns).Error; err != nil {
		return apperrors.Internal("Gagal menghitung absensi hari ini", err)
	}

	var eventsByStatus []statusCount
	if err := ctrl.DB.Model(&eventmodel.EventModel{}).
		Select("event_status AS status, COUNT(*) AS count").
		Group("event_status").
		Scan(&eventsByStatus).Error; err != nil {
		return apperrors.Internal("Gagal merekap kegiatan", err)
	}

	var attendanceByStatus []statusCount
	if err := ctrl.DB.Model(&attendancemodel.AttendanceModel{}).
		Select("attendance_status AS status, COUNT(*) AS count").
		Group("attendance_status").
		Scan(&attendanceByStatus).Error; err != nil {
		return apperrors.Internal("Gagal merekap absensi", err)
	}

	// Periode aktif boleh kosong; dashboard tetap jalan
	var activePeriod *periodmodel.CashPeriodModel
	var period periodmodel.CashPeriodModel
	if err := ctrl.DB.Where("cash_period_is_active = ?", true).First(&period).Error; err == nil {
		activePeriod = &period
	}

	var upcomingEvents []eventmodel.EventModel
	if err := ctrl.DB.
		Where("event_status = ?", eventmodel.EventStatusUpcoming).
		Order("event_start_at ASC").
		Limit(5).
		Find(&upcomingEvents).Error; err != nil {
		return apperrors.Internal("Gagal mengambil kegiatan terdekat", err)
	}

	data := fiber.Map{
		"total_members":        totalMembers,
		"total_events":         totalEvents,
		"today_check_ins":      todayCheckIns,
		"events_by_status":     eventsByStatus,
		"attendance_by_status": attendanceByStatus,
		"upcoming_events":      upcomingEvents,
	}
	if activePeriod != nil {
		data["active_period"] = fiber.Map{
			"cash_period_id":                  activePeriod.CashPeriodID,
			"cash_period_label":               activePeriod.CashPeriodLabel,
			"cash_period_closing_balance_idr": activePeriod.CashPeriodClosingBalanceIDR,
		}
	}

	return helper.JsonOK(c, "Ringkasan dashboard berhasil diambil", data)
}
