package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/configs"
	rolemodel "fkmb_backend/internals/features/users/roles/model"
	usermodel "fkmb_backend/internals/features/users/users/model"
	"fkmb_backend/internals/services/mailer"
)

const (
	bcryptCost          = 12
	resetTokenBytes     = 32 // 64 karakter hex
	resetTokenLifetime  = time.Hour
	defaultAccessTTLMin = 15
	defaultRefreshTTLHr = 24 * 7
)

type AuthService struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db, Mailer: mailer.NewMailer()}
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login memverifikasi email+password dan menerbitkan pasangan token.
// Pesan gagal dibuat generik supaya tidak bisa dipakai menebak email
// mana yang terdaftar.
func (s *AuthService) Login(email, password string) (*usermodel.UserModel, *TokenPair, error) {
	var user usermodel.UserModel
	if err := s.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.Unauthorized("Email atau password salah")
		}
		return nil, nil, apperrors.Internal("Gagal memuat user", err)
	}
	if !user.UserIsActive {
		return nil, nil, apperrors.Forbidden("Akun sedang dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)); err != nil {
		return nil, nil, apperrors.Unauthorized("Email atau password salah")
	}

	pair, err := s.issueTokenPair(&user)
	if err != nil {
		return nil, nil, err
	}
	return &user, pair, nil
}

// Refresh memutar pasangan token: refresh token lama dicek terhadap yang
// tersimpan di baris user, lalu diganti yang baru (rotation).
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := parseToken(refreshToken, configs.JWTRefreshSecret)
	if err != nil {
		return nil, apperrors.Unauthorized("Refresh token tidak valid atau sudah kadaluarsa")
	}

	userID, _ := claims["id"].(string)
	var user usermodel.UserModel
	if err := s.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, apperrors.Unauthorized("Refresh token tidak valid")
	}
	if user.UserRefreshToken == nil || *user.UserRefreshToken != refreshToken {
		return nil, apperrors.Unauthorized("Refresh token sudah tidak berlaku")
	}
	if !user.UserIsActive {
		return nil, apperrors.Forbidden("Akun sedang dinonaktifkan")
	}

	return s.issueTokenPair(&user)
}

// Logout membatalkan refresh token yang tersimpan.
func (s *AuthService) Logout(userID uuid.UUID) error {
	if err := s.DB.Model(&usermodel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_refresh_token", nil).Error; err != nil {
		return apperrors.Internal("Gagal logout", err)
	}
	return nil
}

// ChangePassword untuk user login; wajib menyertakan password lama.
func (s *AuthService) ChangePassword(userID uuid.UUID, oldPassword, newPassword string) error {
	var user usermodel.UserModel
	if err := s.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return apperrors.NotFound("User tidak ditemukan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(oldPassword)); err != nil {
		return apperrors.Unauthorized("Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperrors.Internal("Gagal mengenkripsi password", err)
	}

	if err := s.DB.Model(&user).Updates(map[string]interface{}{
		"user_password":      string(hashed),
		"user_refresh_token": nil,
	}).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan password baru", err)
	}
	return nil
}

// ForgotPassword membuat reset token 1 jam dan mengirimkannya via email.
// Email tidak terdaftar tetap dijawab sukses (anti enumeration); kirim
// email berjalan fire-and-forget.
func (s *AuthService) ForgotPassword(email string) error {
	var user usermodel.UserModel
	if err := s.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Internal("Gagal memuat user", err)
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return apperrors.Internal("Gagal membuat reset token", err)
	}
	token := hex.EncodeToString(buf)
	expiry := time.Now().Add(resetTokenLifetime)

	if err := s.DB.Model(&user).Updates(map[string]interface{}{
		"user_reset_token":            token,
		"user_reset_token_expires_at": expiry,
	}).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan reset token", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", configs.AppBaseURL, token)
	go func() {
		_ = s.Mailer.Send(user.UserName, user.UserEmail, "Reset Password",
			"Klik link berikut untuk reset password (berlaku 1 jam): "+resetURL,
			fmt.Sprintf(`<p>Klik link berikut untuk reset password (berlaku 1 jam):</p><p><a href="%s">%s</a></p>`, resetURL, resetURL))
	}()
	return nil
}

// ResetPassword menukar reset token yang masih hidup dengan password baru.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user usermodel.UserModel
	err := s.DB.
		Where("user_reset_token = ? AND user_reset_token_expires_at > ?", token, time.Now()).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.InvalidToken("Reset token tidak valid atau sudah kadaluarsa")
		}
		return apperrors.Internal("Gagal memeriksa reset token", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperrors.Internal("Gagal mengenkripsi password", err)
	}

	if err := s.DB.Model(&user).Updates(map[string]interface{}{
		"user_password":               string(hashed),
		"user_reset_token":            nil,
		"user_reset_token_expires_at": nil,
		"user_refresh_token":          nil,
	}).Error; err != nil {
		return apperrors.Internal("Gagal menyimpan password baru", err)
	}
	return nil
}

// HashPassword dipakai modul users saat membuat akun.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", apperrors.Internal("Gagal mengenkripsi password", err)
	}
	return string(hashed), nil
}

func (s *AuthService) issueTokenPair(user *usermodel.UserModel) (*TokenPair, error) {
	roleName := s.roleName(user)

	access, err := signToken(user.UserID, roleName, configs.JWTSecret, accessTTL())
	if err != nil {
		return nil, apperrors.Internal("Gagal membuat access token", err)
	}
	refresh, err := signToken(user.UserID, roleName, configs.JWTRefreshSecret, refreshTTL())
	if err != nil {
		return nil, apperrors.Internal("Gagal membuat refresh token", err)
	}

	if err := s.DB.Model(user).Update("user_refresh_token", refresh).Error; err != nil {
		return nil, apperrors.Internal("Gagal menyimpan refresh token", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) roleName(user *usermodel.UserModel) string {
	if user.UserRoleID == nil {
		return ""
	}
	var role rolemodel.RoleModel
	if err := s.DB.Where("role_id = ?", *user.UserRoleID).First(&role).Error; err != nil {
		return ""
	}
	return role.RoleName
}

func signToken(userID uuid.UUID, role, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID.String(),
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func accessTTL() time.Duration {
	if raw := configs.GetEnv("JWT_ACCESS_TTL_MINUTES"); raw != "" {
		if m, err := strconv.Atoi(raw); err == nil && m > 0 {
			return time.Duration(m) * time.Minute
		}
	}
	return defaultAccessTTLMin * time.Minute
}

func refreshTTL() time.Duration {
	if raw := configs.GetEnv("JWT_REFRESH_TTL_HOURS"); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return defaultRefreshTTLHr * time.Hour
}
