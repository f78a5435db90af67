package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoleModel struct {
	RoleID          uuid.UUID      `gorm:"column:role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"role_id"`
	RoleName        string         `gorm:"column:role_name;type:varchar(50);unique;not null"             json:"role_name"`
	RoleDescription string         `gorm:"column:role_description;type:text"                             json:"role_description"`
	RolePermissions datatypes.JSON `gorm:"column:role_permissions;type:jsonb;default:'[]'"               json:"role_permissions"`

	RoleCreatedAt time.Time      `gorm:"column:role_created_at;type:timestamptz;autoCreateTime" json:"role_created_at"`
	RoleUpdatedAt time.Time      `gorm:"column:role_updated_at;type:timestamptz;autoUpdateTime" json:"role_updated_at"`
	RoleDeletedAt gorm.DeletedAt `gorm:"column:role_deleted_at;type:timestamptz;index"          json:"role_deleted_at,omitempty"`
}

func (RoleModel) TableName() string {
	return "roles"
}
