package dto

import (
	"time"

	"github.com/google/uuid"

	"fkmb_backend/internals/features/activities/attendance/model"
)

// 🔹 Request check-in via token (dipakai anggota, user_id dari JWT)
type CheckInRequest struct {
	Token string `json:"token" validate:"required,min=4,max=16"`
}

// 🔹 Request input manual oleh pengurus
type ManualAttendanceRequest struct {
	AttendanceUserID  uuid.UUID `json:"attendance_user_id" validate:"required"`
	AttendanceEventID uuid.UUID `json:"attendance_event_id" validate:"required"`
	AttendanceStatus  string    `json:"attendance_status" validate:"required,oneof=present excused sick absent"`
	AttendanceNote    *string   `json:"attendance_note" validate:"omitempty,max=500"`
}

// 🔹 Request edit status/note
type UpdateAttendanceRequest struct {
	AttendanceStatus *string `json:"attendance_status" validate:"omitempty,oneof=present excused sick absent"`
	AttendanceNote   *string `json:"attendance_note" validate:"omitempty,max=500"`
}

type AttendanceResponse struct {
	AttendanceID          uuid.UUID  `json:"attendance_id"`
	AttendanceUserID      uuid.UUID  `json:"attendance_user_id"`
	AttendanceEventID     uuid.UUID  `json:"attendance_event_id"`
	AttendanceTokenID     *uuid.UUID `json:"attendance_token_id,omitempty"`
	AttendanceTokenLabel  *string    `json:"attendance_token_label,omitempty"`
	AttendanceStatus      string     `json:"attendance_status"`
	AttendanceCheckInTime time.Time  `json:"attendance_check_in_time"`
	AttendanceNote        *string    `json:"attendance_note,omitempty"`
}

func ToAttendanceResponse(m *model.AttendanceModel) *AttendanceResponse {
	return &AttendanceResponse{
		AttendanceID:          m.AttendanceID,
		AttendanceUserID:      m.AttendanceUserID,
		AttendanceEventID:     m.AttendanceEventID,
		AttendanceTokenID:     m.AttendanceTokenID,
		AttendanceTokenLabel:  m.AttendanceTokenLabel,
		AttendanceStatus:      m.AttendanceStatus,
		AttendanceCheckInTime: m.AttendanceCheckInTime,
		AttendanceNote:        m.AttendanceNote,
	}
}

func ToAttendanceResponseList(models []model.AttendanceModel) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToAttendanceResponse(&m))
	}
	return result
}
