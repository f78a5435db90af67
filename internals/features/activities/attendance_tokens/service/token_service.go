package service

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/activities/attendance_tokens/model"
	eventmodel "fkmb_backend/internals/features/activities/events/model"
)

// Alfabet secret tanpa karakter yang mirip secara visual (0/O, 1/I).
const secretAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	secretLength      = 8
	maxSecretAttempts = 10
	qrImageSize       = 256
)

type TokenService struct {
	DB *gorm.DB
}

func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{DB: db}
}

// IssueToken membuat token absensi baru untuk satu sesi kegiatan.
// Secret di-generate ulang sampai unik di antara token yang masih aktif.
func (s *TokenService) IssueToken(eventID uuid.UUID, label *string, expiresAt time.Time) (*model.AttendanceTokenModel, error) {
	var event eventmodel.EventModel
	if err := s.DB.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Kegiatan tidak ditemukan")
		}
		return nil, apperrors.Internal("Gagal memeriksa kegiatan", err)
	}

	secret, err := s.uniqueSecret()
	if err != nil {
		return nil, err
	}

	qr, err := buildQRPayload(secret, eventID)
	if err != nil {
		return nil, apperrors.Internal("Gagal membuat QR code", err)
	}

	token := &model.AttendanceTokenModel{
		TokenEventID:   eventID,
		TokenSecret:    secret,
		TokenLabel:     label,
		TokenQRCode:    qr,
		TokenExpiresAt: expiresAt,
		TokenIsActive:  true,
	}
	if err := s.DB.Create(token).Error; err != nil {
		return nil, apperrors.Internal("Gagal menyimpan token", err)
	}
	return token, nil
}

// Regenerate membangun ulang QR payload untuk token yang sudah ada.
// Secret dan masa berlaku tidak berubah.
func (s *TokenService) Regenerate(tokenID uuid.UUID) (*model.AttendanceTokenModel, error) {
	var token model.AttendanceTokenModel
	if err := s.DB.Where("token_id = ?", tokenID).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Token tidak ditemukan")
		}
		return nil, apperrors.Internal("Gagal memuat token", err)
	}

	qr, err := buildQRPayload(token.TokenSecret, token.TokenEventID)
	if err != nil {
		return nil, apperrors.Internal("Gagal membuat QR code", err)
	}

	if err := s.DB.Model(&token).Update("token_qr_code", qr).Error; err != nil {
		return nil, apperrors.Internal("Gagal menyimpan QR code", err)
	}
	token.TokenQRCode = qr
	return &token, nil
}

// Validate mencari token hidup yang cocok dengan secret (case-insensitive).
// Token harus aktif dan belum kadaluarsa; selain itu InvalidToken.
func (s *TokenService) Validate(rawSecret string) (*model.AttendanceTokenModel, error) {
	secret := NormalizeSecret(rawSecret)
	if secret == "" {
		return nil, apperrors.InvalidToken("Token tidak boleh kosong")
	}

	var token model.AttendanceTokenModel
	err := s.DB.
		Where("UPPER(token_secret) = ? AND token_is_active = ? AND token_expires_at > ?",
			secret, true, time.Now()).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidToken("Token tidak valid atau sudah kadaluarsa")
		}
		return nil, apperrors.Internal("Gagal memeriksa token", err)
	}
	return &token, nil
}

// NormalizeSecret merapikan input user: trim lalu uppercase.
func NormalizeSecret(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func (s *TokenService) uniqueSecret() (string, error) {
	for i := 0; i < maxSecretAttempts; i++ {
		secret, err := GenerateSecret()
		if err != nil {
			return "", apperrors.Internal("Gagal generate token", err)
		}

		var count int64
		if err := s.DB.Model(&model.AttendanceTokenModel{}).
			Where("UPPER(token_secret) = ? AND token_is_active = ?", secret, true).
			Count(&count).Error; err != nil {
			return "", apperrors.Internal("Gagal memeriksa keunikan token", err)
		}
		if count == 0 {
			return secret, nil
		}
	}
	return "", apperrors.Internal("Gagal mendapatkan token unik", fmt.Errorf("melebihi %d percobaan", maxSecretAttempts))
}

// GenerateSecret mengambil 8 karakter acak dari alfabet secret.
// len(secretAlphabet) = 32 membagi habis 256, jadi modulo tidak bias.
func GenerateSecret() (string, error) {
	buf := make([]byte, secretLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, secretLength)
	for i, b := range buf {
		out[i] = secretAlphabet[int(b)%len(secretAlphabet)]
	}
	return string(out), nil
}

// buildQRPayload mengubah secret + event menjadi PNG data URL yang bisa
// langsung dirender client.
func buildQRPayload(secret string, eventID uuid.UUID) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"token":    secret,
		"event_id": eventID.String(),
	})
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, qrImageSize)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
