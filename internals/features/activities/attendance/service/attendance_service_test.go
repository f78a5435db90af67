package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fkmb_backend/internals/apperrors"
	"fkmb_backend/internals/features/activities/attendance/model"
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

func expectTokenRow(mock sqlmock.Sqlmock, tokenID, eventID uuid.UUID) {
	mock.ExpectQuery(`SELECT (.+) FROM "attendance_tokens"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"token_id", "token_event_id", "token_secret", "token_is_active", "token_expires_at"}).
			AddRow(tokenID, eventID, "AB12CD34", true, time.Now().Add(time.Hour)))
}

func TestCheckInByToken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAttendanceService(db)

	userID := uuid.New()
	tokenID := uuid.New()
	eventID := uuid.New()

	expectTokenRow(mock, tokenID, eventID)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance"`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	record, err := svc.CheckInByToken(userID, "ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, userID, record.AttendanceUserID)
	assert.Equal(t, eventID, record.AttendanceEventID)
	require.NotNil(t, record.AttendanceTokenID)
	assert.Equal(t, tokenID, *record.AttendanceTokenID)
	assert.Equal(t, model.AttendanceStatusPresent, record.AttendanceStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Scan kedua dengan token yang sama harus mental sebagai duplikat,
// ditangkap dari unique index DB, bukan dari pengecekan baca-dulu.
func TestCheckInByTokenTwice(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAttendanceService(db)

	userID := uuid.New()
	tokenID := uuid.New()
	eventID := uuid.New()

	// scan pertama sukses
	expectTokenRow(mock, tokenID, eventID)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance"`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	// scan kedua kena unique violation
	expectTokenRow(mock, tokenID, eventID)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ux_attendance_user_token"})
	mock.ExpectRollback()

	_, err := svc.CheckInByToken(userID, "AB12CD34")
	require.NoError(t, err)

	_, err = svc.CheckInByToken(userID, "AB12CD34")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindDuplicateCheckIn, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckInByTokenInvalidSecret(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAttendanceService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "attendance_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"token_id"}))

	_, err := svc.CheckInByToken(uuid.New(), "SALAH123")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindInvalidToken, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckInManualInvalidStatus(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewAttendanceService(db)

	_, err := svc.CheckInManual(uuid.New(), uuid.New(), "hadir-banget", nil)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "attendance_status")
}

func TestCheckInManualDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAttendanceService(db)

	eventID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(eventID))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ux_attendance_user_event_manual"})
	mock.ExpectRollback()

	_, err := svc.CheckInManual(uuid.New(), eventID, model.AttendanceStatusSick, nil)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindDuplicateCheckIn, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRecord(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAttendanceService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "attendance"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.Delete(uuid.New())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}
