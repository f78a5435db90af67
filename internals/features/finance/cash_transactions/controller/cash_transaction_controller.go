package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/finance/cash_transactions/dto"
	"fkmb_backend/internals/features/finance/cash_transactions/model"
	"fkmb_backend/internals/features/finance/cash_transactions/service"
	helper "fkmb_backend/internals/helpers"
)

type CashTransactionController struct {
	DB     *gorm.DB
	Ledger *service.LedgerService
}

func NewCashTransactionController(db *gorm.DB) *CashTransactionController {
	return &CashTransactionController{DB: db, Ledger: service.NewLedgerService(db)}
}

// 🟢 POST /api/a/cash-transactions
func (ctrl *CashTransactionController) CreateTransaction(c *fiber.Ctx) error {
	var req dto.CreateCashTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	var createdBy *uuid.UUID
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		createdBy = &userID
	}

	input, err := req.ToRecordInput(createdBy)
	if err != nil {
		return err
	}

	record, err := ctrl.Ledger.RecordTransaction(input)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Transaksi kas berhasil dicatat", dto.ToCashTransactionResponse(record))
}

// 🟢 GET /api/a/cash-transactions/by-period/:period_id
func (ctrl *CashTransactionController) GetByPeriod(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDParam(c, "period_id")
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.CashTransactionModel{}).
		Where("cash_transaction_period_id = ?", periodID)
	if kind := c.Query("kind"); kind != "" {
		base = base.Where("cash_transaction_kind = ?", kind)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return apperrors.Internal("Gagal menghitung transaksi", err)
	}

	var records []model.CashTransactionModel
	if err := base.
		Order("cash_transaction_date DESC, cash_transaction_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&records).Error; err != nil {
		return apperrors.Internal("Gagal mengambil transaksi", err)
	}

	return helper.JsonList(c, "Daftar transaksi berhasil diambil",
		dto.ToCashTransactionResponseList(records),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/cash-transactions/balance/:period_id?start_date=&end_date=
func (ctrl *CashTransactionController) GetBalance(c *fiber.Ctx) error {
	periodID, err := helper.ParseUUIDParam(c, "period_id")
	if err != nil {
		return err
	}

	var startDate, endDate *time.Time
	if raw := c.Query("start_date"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return apperrors.Validation("Tanggal tidak valid", map[string][]string{
				"start_date": {"format tanggal harus 2006-01-02"},
			})
		}
		startDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return apperrors.Validation("Tanggal tidak valid", map[string][]string{
				"end_date": {"format tanggal harus 2006-01-02"},
			})
		}
		endDate = &t
	}

	balance, err := ctrl.Ledger.GetBalance(periodID, startDate, endDate)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Saldo berhasil dihitung", balance)
}

// 🟡 PATCH /api/a/cash-transactions/:id
func (ctrl *CashTransactionController) UpdateTransaction(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCashTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Permintaan tidak valid", nil)
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return err
	}

	input, err := req.ToUpdateInput()
	if err != nil {
		return err
	}

	record, err := ctrl.Ledger.UpdateTransaction(id, input)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Transaksi berhasil diperbarui", dto.ToCashTransactionResponse(record))
}

// 🔴 DELETE /api/a/cash-transactions/:id (hard delete + hitung ulang saldo)
func (ctrl *CashTransactionController) DeleteTransaction(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.Ledger.DeleteTransaction(id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "Transaksi berhasil dihapus permanen")
}
