// file: internals/middlewares/error_handler.go
package middlewares

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"fkmb_backend/internals/apperrors"
	helper "fkmb_backend/internals/helpers"
)

// ErrorHandler memetakan error bertipe dari service/controller ke envelope
// JSON. Kegagalan yang memang bagian alur normal (token invalid, absen
// dobel, validasi) tidak dicatat sebagai error server.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		if !appErr.Expected() {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), appErr.Unwrap())
		}
		if appErr.Kind == apperrors.KindValidation {
			return helper.JsonValidationError(c, appErr.Message, appErr.Fields)
		}
		return helper.JsonError(c, appErr.Status(), appErr.Message)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return helper.JsonError(c, fiberErr.Code, fiberErr.Message)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
