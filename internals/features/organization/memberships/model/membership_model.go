package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MembershipModel adalah satu baris masa jabatan kepengurusan:
// user menjabat posisi tertentu di satu departemen untuk satu periode.
type MembershipModel struct {
	MembershipID           uuid.UUID       `gorm:"column:membership_id;type:uuid;default:gen_random_uuid();primaryKey" json:"membership_id"`
	MembershipUserID       uuid.UUID       `gorm:"column:membership_user_id;type:uuid;not null;index"                  json:"membership_user_id"`
	MembershipDepartmentID uuid.UUID       `gorm:"column:membership_department_id;type:uuid;not null;index"            json:"membership_department_id"`
	MembershipPosition     string          `gorm:"column:membership_position;type:varchar(100);not null"               json:"membership_position"`
	MembershipPeriod       string          `gorm:"column:membership_period;type:varchar(20);not null"                  json:"membership_period"`
	MembershipStartDate    datatypes.Date  `gorm:"column:membership_start_date;type:date;not null"                     json:"membership_start_date"`
	MembershipEndDate      *datatypes.Date `gorm:"column:membership_end_date;type:date"                                json:"membership_end_date,omitempty"`
	MembershipIsActive     bool            `gorm:"column:membership_is_active;not null;default:true"                   json:"membership_is_active"`

	MembershipCreatedAt time.Time      `gorm:"column:membership_created_at;type:timestamptz;autoCreateTime" json:"membership_created_at"`
	MembershipUpdatedAt time.Time      `gorm:"column:membership_updated_at;type:timestamptz;autoUpdateTime" json:"membership_updated_at"`
	MembershipDeletedAt gorm.DeletedAt `gorm:"column:membership_deleted_at;type:timestamptz;index"          json:"membership_deleted_at,omitempty"`
}

func (MembershipModel) TableName() string {
	return "memberships"
}
