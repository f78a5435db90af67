package model

import (
	"time"

	"github.com/google/uuid"
)

// Status kehadiran
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusExcused = "excused"
	AttendanceStatusSick    = "sick"
	AttendanceStatusAbsent  = "absent"
)

// AttendanceModel adalah satu catatan kehadiran, dari scan token atau
// input manual pengurus. Dihapus permanen (hard delete), tanpa cascade.
type AttendanceModel struct {
	AttendanceID          uuid.UUID  `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceUserID      uuid.UUID  `gorm:"column:attendance_user_id;type:uuid;not null;index"                  json:"attendance_user_id"`
	AttendanceEventID     uuid.UUID  `gorm:"column:attendance_event_id;type:uuid;not null;index"                 json:"attendance_event_id"`
	AttendanceTokenID     *uuid.UUID `gorm:"column:attendance_token_id;type:uuid"                                json:"attendance_token_id,omitempty"`
	AttendanceTokenLabel  *string    `gorm:"column:attendance_token_label;type:varchar(255)"                     json:"attendance_token_label,omitempty"`
	AttendanceStatus      string     `gorm:"column:attendance_status;type:varchar(20);not null;default:present"  json:"attendance_status"`
	AttendanceCheckInTime time.Time  `gorm:"column:attendance_check_in_time;type:timestamptz;not null"           json:"attendance_check_in_time"`
	AttendanceNote        *string    `gorm:"column:attendance_note;type:text"                                    json:"attendance_note,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;type:timestamptz;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;type:timestamptz;autoUpdateTime" json:"attendance_updated_at"`

	// NOTE:
	// - Satu check-in per (user, token) dan satu record manual per (user, event)
	//   ditegakkan oleh partial unique index di migration, bukan read-then-write:
	//   CREATE UNIQUE INDEX ux_attendance_user_token ON attendance
	//     (attendance_user_id, attendance_token_id) WHERE attendance_token_id IS NOT NULL;
	//   CREATE UNIQUE INDEX ux_attendance_user_event_manual ON attendance
	//     (attendance_user_id, attendance_event_id) WHERE attendance_token_id IS NULL;
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusExcused, AttendanceStatusSick, AttendanceStatusAbsent:
		return true
	}
	return false
}
