package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fkmb_backend/internals/features/users/roles/model"
)

// 🔹 Request membuat role
type CreateRoleRequest struct {
	RoleName        string   `json:"role_name" validate:"required,max=50"`
	RoleDescription string   `json:"role_description" validate:"omitempty,max=1000"`
	RolePermissions []string `json:"role_permissions" validate:"omitempty,dive,max=50"`
}

// 🔹 Request update role
type UpdateRoleRequest struct {
	RoleName        *string   `json:"role_name" validate:"omitempty,max=50"`
	RoleDescription *string   `json:"role_description" validate:"omitempty,max=1000"`
	RolePermissions *[]string `json:"role_permissions" validate:"omitempty,dive,max=50"`
}

type RoleResponse struct {
	RoleID          uuid.UUID `json:"role_id"`
	RoleName        string    `json:"role_name"`
	RoleDescription string    `json:"role_description"`
	RolePermissions []string  `json:"role_permissions"`
	RoleCreatedAt   string    `json:"role_created_at"`
}

func (r *CreateRoleRequest) ToModel() (*model.RoleModel, error) {
	perms := r.RolePermissions
	if perms == nil {
		perms = []string{}
	}
	raw, err := json.Marshal(perms)
	if err != nil {
		return nil, err
	}
	return &model.RoleModel{
		RoleName:        r.RoleName,
		RoleDescription: r.RoleDescription,
		RolePermissions: datatypes.JSON(raw),
	}, nil
}

func ToRoleResponse(m *model.RoleModel) *RoleResponse {
	perms := []string{}
	if len(m.RolePermissions) > 0 {
		// Kolom jsonb selalu berisi array string; isi rusak dianggap kosong
		_ = json.Unmarshal(m.RolePermissions, &perms)
	}
	return &RoleResponse{
		RoleID:          m.RoleID,
		RoleName:        m.RoleName,
		RoleDescription: m.RoleDescription,
		RolePermissions: perms,
		RoleCreatedAt:   m.RoleCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToRoleResponseList(models []model.RoleModel) []RoleResponse {
	result := make([]RoleResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToRoleResponse(&m))
	}
	return result
}
