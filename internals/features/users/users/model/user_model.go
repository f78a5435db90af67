package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID           uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail        string     `gorm:"column:user_email;type:varchar(255);unique;not null"           json:"user_email"`
	UserPassword     string     `gorm:"column:user_password;type:varchar(255);not null"               json:"-"`
	UserName         string     `gorm:"column:user_name;type:varchar(255);not null"                   json:"user_name"`
	UserNIM          *string    `gorm:"column:user_nim;type:varchar(20)"                              json:"user_nim,omitempty"`
	UserPhone        *string    `gorm:"column:user_phone;type:varchar(20)"                            json:"user_phone,omitempty"`
	UserFaculty      *string    `gorm:"column:user_faculty;type:varchar(100)"                         json:"user_faculty,omitempty"`
	UserStudyProgram *string    `gorm:"column:user_study_program;type:varchar(100)"                   json:"user_study_program,omitempty"`
	UserClassYear    *string    `gorm:"column:user_class_year;type:varchar(10)"                       json:"user_class_year,omitempty"`
	UserAvatarURL    *string    `gorm:"column:user_avatar_url;type:text"                              json:"user_avatar_url,omitempty"`
	UserRoleID       *uuid.UUID `gorm:"column:user_role_id;type:uuid;index"                           json:"user_role_id,omitempty"`
	UserDepartmentID *uuid.UUID `gorm:"column:user_department_id;type:uuid;index"                     json:"user_department_id,omitempty"`
	UserIsActive     bool       `gorm:"column:user_is_active;not null;default:true"                   json:"user_is_active"`

	// Kredensial sesi; tidak pernah dikirim ke client
	UserRefreshToken        *string    `gorm:"column:user_refresh_token;type:text"            json:"-"`
	UserResetToken          *string    `gorm:"column:user_reset_token;type:text"              json:"-"`
	UserResetTokenExpiresAt *time.Time `gorm:"column:user_reset_token_expires_at;type:timestamptz" json:"-"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;type:timestamptz;index"          json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
