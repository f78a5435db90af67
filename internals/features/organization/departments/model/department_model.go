package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID          uuid.UUID `gorm:"column:department_id;type:uuid;default:gen_random_uuid();primaryKey" json:"department_id"`
	DepartmentName        string    `gorm:"column:department_name;type:varchar(100);not null"                   json:"department_name"`
	DepartmentDescription string    `gorm:"column:department_description;type:text"                             json:"department_description"`
	DepartmentLogoURL     *string   `gorm:"column:department_logo_url;type:text"                                json:"department_logo_url,omitempty"`

	DepartmentCreatedAt time.Time      `gorm:"column:department_created_at;type:timestamptz;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time      `gorm:"column:department_updated_at;type:timestamptz;autoUpdateTime" json:"department_updated_at"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;type:timestamptz;index"          json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
