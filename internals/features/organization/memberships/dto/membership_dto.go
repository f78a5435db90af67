package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/organization/memberships/model"
)

const dateLayout = "2006-01-02"

// 🔹 Request membuat baris kepengurusan
type CreateMembershipRequest struct {
	MembershipUserID       uuid.UUID `json:"membership_user_id" validate:"required"`
	MembershipDepartmentID uuid.UUID `json:"membership_department_id" validate:"required"`
	MembershipPosition     string    `json:"membership_position" validate:"required,max=100"`
	MembershipPeriod       string    `json:"membership_period" validate:"required,max=20"`
	MembershipStartDate    string    `json:"membership_start_date" validate:"required,datetime=2006-01-02"`
	MembershipEndDate      *string   `json:"membership_end_date" validate:"omitempty,datetime=2006-01-02"`
}

// 🔹 Request update kepengurusan
type UpdateMembershipRequest struct {
	MembershipPosition *string `json:"membership_position" validate:"omitempty,max=100"`
	MembershipPeriod   *string `json:"membership_period" validate:"omitempty,max=20"`
	MembershipEndDate  *string `json:"membership_end_date" validate:"omitempty,datetime=2006-01-02"`
	MembershipIsActive *bool   `json:"membership_is_active"`
}

type MembershipResponse struct {
	MembershipID           uuid.UUID `json:"membership_id"`
	MembershipUserID       uuid.UUID `json:"membership_user_id"`
	MembershipDepartmentID uuid.UUID `json:"membership_department_id"`
	MembershipPosition     string    `json:"membership_position"`
	MembershipPeriod       string    `json:"membership_period"`
	MembershipStartDate    string    `json:"membership_start_date"`
	MembershipEndDate      *string   `json:"membership_end_date,omitempty"`
	MembershipIsActive     bool      `json:"membership_is_active"`
}

func (r *CreateMembershipRequest) ToModel() (*model.MembershipModel, error) {
	start, err := time.Parse(dateLayout, r.MembershipStartDate)
	if err != nil {
		return nil, apperrors.Validation("Tanggal tidak valid", map[string][]string{
			"membership_start_date": {"format tanggal harus " + dateLayout},
		})
	}

	m := &model.MembershipModel{
		MembershipUserID:       r.MembershipUserID,
		MembershipDepartmentID: r.MembershipDepartmentID,
		MembershipPosition:     r.MembershipPosition,
		MembershipPeriod:       r.MembershipPeriod,
		MembershipStartDate:    datatypes.Date(start),
		MembershipIsActive:     true,
	}
	if r.MembershipEndDate != nil {
		end, err := time.Parse(dateLayout, *r.MembershipEndDate)
		if err != nil {
			return nil, apperrors.Validation("Tanggal tidak valid", map[string][]string{
				"membership_end_date": {"format tanggal harus " + dateLayout},
			})
		}
		d := datatypes.Date(end)
		m.MembershipEndDate = &d
	}
	return m, nil
}

func ToMembershipResponse(m *model.MembershipModel) *MembershipResponse {
	resp := &MembershipResponse{
		MembershipID:           m.MembershipID,
		MembershipUserID:       m.MembershipUserID,
		MembershipDepartmentID: m.MembershipDepartmentID,
		MembershipPosition:     m.MembershipPosition,
		MembershipPeriod:       m.MembershipPeriod,
		MembershipStartDate:    time.Time(m.MembershipStartDate).Format(dateLayout),
		MembershipIsActive:     m.MembershipIsActive,
	}
	if m.MembershipEndDate != nil {
		s := time.Time(*m.MembershipEndDate).Format(dateLayout)
		resp.MembershipEndDate = &s
	}
	return resp
}

func ToMembershipResponseList(models []model.MembershipModel) []MembershipResponse {
	result := make([]MembershipResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToMembershipResponse(&m))
	}
	return result
}
