package dto

import (
	"time"

	"github.com/google/uuid"

	"fkmb_backend/internals/features/activities/attendance_tokens/model"
)

// 🔹 Request membuat token absensi
type CreateTokenRequest struct {
	TokenEventID   uuid.UUID `json:"token_event_id" validate:"required"`
	TokenLabel     *string   `json:"token_label" validate:"omitempty,max=255"`
	TokenExpiresAt time.Time `json:"token_expires_at" validate:"required"`
}

// 🔹 Request update token (hanya label/aktif/kadaluarsa yang boleh diubah)
type UpdateTokenRequest struct {
	TokenLabel     *string    `json:"token_label" validate:"omitempty,max=255"`
	TokenIsActive  *bool      `json:"token_is_active"`
	TokenExpiresAt *time.Time `json:"token_expires_at"`
}

type TokenResponse struct {
	TokenID        uuid.UUID `json:"token_id"`
	TokenEventID   uuid.UUID `json:"token_event_id"`
	TokenSecret    string    `json:"token_secret"`
	TokenLabel     *string   `json:"token_label,omitempty"`
	TokenQRCode    string    `json:"token_qr_code"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
	TokenIsActive  bool      `json:"token_is_active"`
	TokenCreatedAt string    `json:"token_created_at"`
}

func ToTokenResponse(m *model.AttendanceTokenModel) *TokenResponse {
	return &TokenResponse{
		TokenID:        m.TokenID,
		TokenEventID:   m.TokenEventID,
		TokenSecret:    m.TokenSecret,
		TokenLabel:     m.TokenLabel,
		TokenQRCode:    m.TokenQRCode,
		TokenExpiresAt: m.TokenExpiresAt,
		TokenIsActive:  m.TokenIsActive,
		TokenCreatedAt: m.TokenCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToTokenResponseList(models []model.AttendanceTokenModel) []TokenResponse {
	result := make([]TokenResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToTokenResponse(&m))
	}
	return result
}
