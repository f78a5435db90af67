package dto

import (
	"github.com/google/uuid"

	"fkmb_backend/internals/features/users/users/model"
)

// 🔹 Request membuat user baru (oleh admin)
type CreateUserRequest struct {
	UserEmail        string     `json:"user_email" validate:"required,email"`
	UserPassword     string     `json:"user_password" validate:"required,min=8"`
	UserName         string     `json:"user_name" validate:"required,max=255"`
	UserNIM          *string    `json:"user_nim" validate:"omitempty,max=20"`
	UserPhone        *string    `json:"user_phone" validate:"omitempty,max=20"`
	UserFaculty      *string    `json:"user_faculty" validate:"omitempty,max=100"`
	UserStudyProgram *string    `json:"user_study_program" validate:"omitempty,max=100"`
	UserClassYear    *string    `json:"user_class_year" validate:"omitempty,max=10"`
	UserRoleID       *uuid.UUID `json:"user_role_id"`
	UserDepartmentID *uuid.UUID `json:"user_department_id"`
}

// 🔹 Request update user (semua field opsional)
type UpdateUserRequest struct {
	UserName         *string    `json:"user_name" validate:"omitempty,max=255"`
	UserNIM          *string    `json:"user_nim" validate:"omitempty,max=20"`
	UserPhone        *string    `json:"user_phone" validate:"omitempty,max=20"`
	UserFaculty      *string    `json:"user_faculty" validate:"omitempty,max=100"`
	UserStudyProgram *string    `json:"user_study_program" validate:"omitempty,max=100"`
	UserClassYear    *string    `json:"user_class_year" validate:"omitempty,max=10"`
	UserRoleID       *uuid.UUID `json:"user_role_id"`
	UserDepartmentID *uuid.UUID `json:"user_department_id"`
	UserIsActive     *bool      `json:"user_is_active"`
}

type UserResponse struct {
	UserID           uuid.UUID  `json:"user_id"`
	UserEmail        string     `json:"user_email"`
	UserName         string     `json:"user_name"`
	UserNIM          *string    `json:"user_nim,omitempty"`
	UserPhone        *string    `json:"user_phone,omitempty"`
	UserFaculty      *string    `json:"user_faculty,omitempty"`
	UserStudyProgram *string    `json:"user_study_program,omitempty"`
	UserClassYear    *string    `json:"user_class_year,omitempty"`
	UserAvatarURL    *string    `json:"user_avatar_url,omitempty"`
	UserRoleID       *uuid.UUID `json:"user_role_id,omitempty"`
	UserDepartmentID *uuid.UUID `json:"user_department_id,omitempty"`
	UserIsActive     bool       `json:"user_is_active"`
	UserCreatedAt    string     `json:"user_created_at"`
}

func (r *CreateUserRequest) ToModel(hashedPassword string) *model.UserModel {
	return &model.UserModel{
		UserEmail:        r.UserEmail,
		UserPassword:     hashedPassword,
		UserName:         r.UserName,
		UserNIM:          r.UserNIM,
		UserPhone:        r.UserPhone,
		UserFaculty:      r.UserFaculty,
		UserStudyProgram: r.UserStudyProgram,
		UserClassYear:    r.UserClassYear,
		UserRoleID:       r.UserRoleID,
		UserDepartmentID: r.UserDepartmentID,
		UserIsActive:     true,
	}
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:           m.UserID,
		UserEmail:        m.UserEmail,
		UserName:         m.UserName,
		UserNIM:          m.UserNIM,
		UserPhone:        m.UserPhone,
		UserFaculty:      m.UserFaculty,
		UserStudyProgram: m.UserStudyProgram,
		UserClassYear:    m.UserClassYear,
		UserAvatarURL:    m.UserAvatarURL,
		UserRoleID:       m.UserRoleID,
		UserDepartmentID: m.UserDepartmentID,
		UserIsActive:     m.UserIsActive,
		UserCreatedAt:    m.UserCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	result := make([]UserResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToUserResponse(&m))
	}
	return result
}
