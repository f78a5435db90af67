package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/activities/attendance/model"
	tokenservice "fkmb_backend/internals/features/activities/attendance_tokens/service"
	eventmodel "fkmb_backend/internals/features/activities/events/model"
	helper "fkmb_backend/internals/helpers"
)

type AttendanceService struct {
	DB     *gorm.DB
	Tokens *tokenservice.TokenService
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db, Tokens: tokenservice.NewTokenService(db)}
}

// CheckInByToken menukar secret yang discan user menjadi catatan hadir.
// Duplikat (user, token) diserahkan ke unique index DB, bukan dicek
// baca-dulu-baru-tulis, supaya submit ganda yang bersamaan tidak dua-duanya
// lolos.
func (s *AttendanceService) CheckInByToken(userID uuid.UUID, rawSecret string) (*model.AttendanceModel, error) {
	token, err := s.Tokens.Validate(rawSecret)
	if err != nil {
		return nil, err
	}

	record := &model.AttendanceModel{
		AttendanceUserID:      userID,
		AttendanceEventID:     token.TokenEventID,
		AttendanceTokenID:     &token.TokenID,
		AttendanceTokenLabel:  token.TokenLabel,
		AttendanceStatus:      model.AttendanceStatusPresent,
		AttendanceCheckInTime: time.Now(),
	}
	if err := s.DB.Create(record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, apperrors.DuplicateCheckIn("Kamu sudah absen untuk sesi ini")
		}
		return nil, apperrors.Internal("Gagal menyimpan absensi", err)
	}
	return record, nil
}

// CheckInManual untuk input kehadiran oleh pengurus, tanpa token.
// Satu record manual per (user, kegiatan); strategi unique index sama.
func (s *AttendanceService) CheckInManual(userID, eventID uuid.UUID, status string, note *string) (*model.AttendanceModel, error) {
	if !model.IsValidAttendanceStatus(status) {
		return nil, apperrors.Validation("Status kehadiran tidak valid", map[string][]string{
			"attendance_status": {"harus salah satu dari: present excused sick absent"},
		})
	}

	var event eventmodel.EventModel
	if err := s.DB.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Kegiatan tidak ditemukan")
		}
		return nil, apperrors.Internal("Gagal memeriksa kegiatan", err)
	}

	record := &model.AttendanceModel{
		AttendanceUserID:      userID,
		AttendanceEventID:     eventID,
		AttendanceStatus:      status,
		AttendanceCheckInTime: time.Now(),
		AttendanceNote:        note,
	}
	if err := s.DB.Create(record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, apperrors.DuplicateCheckIn("User sudah punya catatan manual untuk kegiatan ini")
		}
		return nil, apperrors.Internal("Gagal menyimpan absensi", err)
	}
	return record, nil
}

// UpdateStatus hanya mengubah status/note; field lain beku setelah dibuat.
func (s *AttendanceService) UpdateStatus(recordID uuid.UUID, status *string, note *string) (*model.AttendanceModel, error) {
	var record model.AttendanceModel
	if err := s.DB.Where("attendance_id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Catatan absensi tidak ditemukan")
		}
		return nil, apperrors.Internal("Gagal memuat absensi", err)
	}

	updates := map[string]interface{}{}
	if status != nil {
		if !model.IsValidAttendanceStatus(*status) {
			return nil, apperrors.Validation("Status kehadiran tidak valid", map[string][]string{
				"attendance_status": {"harus salah satu dari: present excused sick absent"},
			})
		}
		updates["attendance_status"] = *status
	}
	if note != nil {
		updates["attendance_note"] = *note
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("Tidak ada field yang diupdate", nil)
	}

	if err := s.DB.Model(&record).Updates(updates).Error; err != nil {
		return nil, apperrors.Internal("Gagal memperbarui absensi", err)
	}
	if err := s.DB.Where("attendance_id = ?", recordID).First(&record).Error; err != nil {
		return nil, apperrors.Internal("Gagal memuat absensi terbaru", err)
	}
	return &record, nil
}

// Delete menghapus permanen, tanpa efek berantai.
func (s *AttendanceService) Delete(recordID uuid.UUID) error {
	result := s.DB.Where("attendance_id = ?", recordID).Delete(&model.AttendanceModel{})
	if result.Error != nil {
		return apperrors.Internal("Gagal menghapus absensi", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Catatan absensi tidak ditemukan")
	}
	return nil
}
