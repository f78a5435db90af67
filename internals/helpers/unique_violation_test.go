package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgxDup := &pgconn.PgError{Code: "23505", ConstraintName: "ux_attendance_user_token"}
	assert.True(t, IsUniqueViolation(pgxDup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert gagal: %w", pgxDup)))

	pqDup := &pq.Error{Code: "23505"}
	assert.True(t, IsUniqueViolation(pqDup))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"})) // FK violation
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}
