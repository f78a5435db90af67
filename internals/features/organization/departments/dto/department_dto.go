package dto

import (
	"github.com/google/uuid"

	"fkmb_backend/internals/features/organization/departments/model"
)

// 🔹 Request membuat departemen
type CreateDepartmentRequest struct {
	DepartmentName        string `json:"department_name" validate:"required,max=100"`
	DepartmentDescription string `json:"department_description" validate:"omitempty,max=1000"`
}

// 🔹 Request update departemen
type UpdateDepartmentRequest struct {
	DepartmentName        *string `json:"department_name" validate:"omitempty,max=100"`
	DepartmentDescription *string `json:"department_description" validate:"omitempty,max=1000"`
}

type DepartmentResponse struct {
	DepartmentID          uuid.UUID `json:"department_id"`
	DepartmentName        string    `json:"department_name"`
	DepartmentDescription string    `json:"department_description"`
	DepartmentLogoURL     *string   `json:"department_logo_url,omitempty"`
	DepartmentCreatedAt   string    `json:"department_created_at"`
}

func (r *CreateDepartmentRequest) ToModel() *model.DepartmentModel {
	return &model.DepartmentModel{
		DepartmentName:        r.DepartmentName,
		DepartmentDescription: r.DepartmentDescription,
	}
}

func ToDepartmentResponse(m *model.DepartmentModel) *DepartmentResponse {
	return &DepartmentResponse{
		DepartmentID:          m.DepartmentID,
		DepartmentName:        m.DepartmentName,
		DepartmentDescription: m.DepartmentDescription,
		DepartmentLogoURL:     m.DepartmentLogoURL,
		DepartmentCreatedAt:   m.DepartmentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToDepartmentResponseList(models []model.DepartmentModel) []DepartmentResponse {
	result := make([]DepartmentResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToDepartmentResponse(&m))
	}
	return result
}
