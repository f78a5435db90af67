package service

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestGenerateSecret(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		secret, err := GenerateSecret()
		require.NoError(t, err)
		assert.Len(t, secret, secretLength)
		for _, ch := range secret {
			assert.Containsf(t, secretAlphabet, string(ch), "karakter di luar alfabet: %q", ch)
		}
		seen[secret] = true
	}
	// 100 secret 8 karakter dari 32^8 kemungkinan; tabrakan praktis mustahil
	assert.Greater(t, len(seen), 90)
}

func TestNormalizeSecret(t *testing.T) {
	assert.Equal(t, "AB12CD34", NormalizeSecret("  ab12cd34 "))
	assert.Equal(t, "XYZ", NormalizeSecret("xYz"))
	assert.Equal(t, "", NormalizeSecret("   "))
}

func TestValidateEmptySecret(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewTokenService(db)

	_, err := svc.Validate("   ")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindInvalidToken, appErr.Kind)
}

func TestValidateUnknownSecret(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "attendance_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"token_id"}))

	_, err := svc.Validate("ab12cd34")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindInvalidToken, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateLiveToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db)

	tokenID := uuid.New()
	eventID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "attendance_tokens"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"token_id", "token_event_id", "token_secret", "token_is_active", "token_expires_at"}).
			AddRow(tokenID, eventID, "AB12CD34", true, time.Now().Add(time.Hour)))

	token, err := svc.Validate("ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, tokenID, token.TokenID)
	assert.Equal(t, eventID, token.TokenEventID)
	assert.Equal(t, "AB12CD34", token.TokenSecret)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueTokenUnknownEvent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}))

	_, err := svc.IssueToken(uuid.New(), nil, time.Now().Add(time.Hour))
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db)

	eventID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "event_name"}).
			AddRow(eventID, "Kajian Rutin"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "attendance_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"token_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	token, err := svc.IssueToken(eventID, nil, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, token.TokenSecret, secretLength)
	assert.True(t, token.TokenIsActive)
	assert.True(t, strings.HasPrefix(token.TokenQRCode, "data:image/png;base64,"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssueTokenRetriesOnCollision(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTokenService(db)

	eventID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(eventID))
	// secret pertama bentrok dengan token aktif lain, harus coba lagi
	mock.ExpectQuery(`SELECT count\(\*\) FROM "attendance_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "attendance_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"token_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	token, err := svc.IssueToken(eventID, nil, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, token.TokenSecret, secretLength)
	assert.NoError(t, mock.ExpectationsWereMet())
}
