package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceTokenModel adalah kode absensi pendek untuk satu sesi kegiatan.
// Token dihapus permanen (hard delete), tidak pakai soft delete.
type AttendanceTokenModel struct {
	TokenID        uuid.UUID `gorm:"column:token_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_id"`
	TokenEventID   uuid.UUID `gorm:"column:token_event_id;type:uuid;not null;index"                 json:"token_event_id"`
	TokenSecret    string    `gorm:"column:token_secret;type:varchar(8);not null"                   json:"token_secret"`
	TokenLabel     *string   `gorm:"column:token_label;type:varchar(255)"                           json:"token_label,omitempty"`
	TokenQRCode    string    `gorm:"column:token_qr_code;type:text"                                 json:"token_qr_code"`
	TokenExpiresAt time.Time `gorm:"column:token_expires_at;type:timestamptz;not null"              json:"token_expires_at"`
	TokenIsActive  bool      `gorm:"column:token_is_active;not null;default:true"                   json:"token_is_active"`

	TokenCreatedAt time.Time `gorm:"column:token_created_at;type:timestamptz;autoCreateTime" json:"token_created_at"`
	TokenUpdatedAt time.Time `gorm:"column:token_updated_at;type:timestamptz;autoUpdateTime" json:"token_updated_at"`

	// NOTE:
	// - Keunikan secret hanya berlaku untuk token aktif, dibuat lewat migration:
	//   CREATE UNIQUE INDEX ux_attendance_tokens_secret_active
	//     ON attendance_tokens (UPPER(token_secret)) WHERE token_is_active = true;
	//   Tidak bisa diekspresikan lewat tag GORM.
}

func (AttendanceTokenModel) TableName() string {
	return "attendance_tokens"
}
