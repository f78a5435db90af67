// file: internals/helpers/validate.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"fkmb_backend/internals/apperrors"
)

var validate = validator.New()

// ValidateStruct menjalankan validator.v10 dan mengubah hasilnya
// menjadi apperrors.Validation dengan peta error per field.
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperrors.Validation("Payload tidak valid", nil)
		}
		fields := make(map[string][]string, len(ve))
		for _, fe := range ve {
			name := strings.ToLower(fe.Field())
			fields[name] = append(fields[name], validationMessage(fe))
		}
		return apperrors.Validation("Validasi gagal", fields)
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "format email tidak valid"
	case "min":
		return "minimal " + fe.Param()
	case "max":
		return "maksimal " + fe.Param()
	case "uuid":
		return "harus berupa UUID"
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "datetime":
		return "format tanggal harus " + fe.Param()
	case "gtfield":
		return "harus setelah " + strings.ToLower(fe.Param())
	default:
		return "tidak valid (" + fe.Tag() + ")"
	}
}
