// file: internals/apperrors/apperrors.go
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind adalah taksonomi error inti. Semua kegagalan dari service
// dikembalikan sebagai *Error bertipe, tidak pernah panic lewat handler.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindInvalidToken     Kind = "invalid_token"
	KindDuplicateCheckIn Kind = "duplicate_check_in"
	KindValidation       Kind = "validation"
	KindConflict         Kind = "conflict"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindInternal         Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	// Fields diisi untuk KindValidation: field → daftar pesan.
	Fields map[string][]string
	// Err menyimpan penyebab asli (mis. error DB) untuk logging.
	Err error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Status memetakan kind ke kode HTTP.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidToken:
		return fiber.StatusBadRequest
	case KindDuplicateCheckIn, KindConflict:
		return fiber.StatusConflict
	case KindValidation:
		return fiber.StatusUnprocessableEntity
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// Expected true untuk kegagalan yang memang bagian dari alur normal
// (token invalid, absen dobel, validasi). Tidak perlu dicatat sebagai
// error server.
func (e *Error) Expected() bool {
	switch e.Kind {
	case KindInternal:
		return false
	default:
		return true
	}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func InvalidToken(message string) *Error {
	return &Error{Kind: KindInvalidToken, Message: message}
}

func DuplicateCheckIn(message string) *Error {
	return &Error{Kind: KindDuplicateCheckIn, Message: message}
}

func Validation(message string, fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// As membongkar err menjadi *Error kalau memang bertipe itu.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
