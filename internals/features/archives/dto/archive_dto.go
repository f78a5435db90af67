package dto

import (
	"github.com/google/uuid"

	"fkmb_backend/internals/features/archives/model"
)

// 🔹 Metadata arsip dikirim sebagai form field di samping file upload
type CreateArchiveRequest struct {
	ArchiveTitle        string     `json:"archive_title" validate:"required,max=255"`
	ArchiveDescription  string     `json:"archive_description" validate:"omitempty,max=2000"`
	ArchiveCategory     string     `json:"archive_category" validate:"omitempty,max=100"`
	ArchiveDepartmentID *uuid.UUID `json:"archive_department_id"`
}

// 🔹 Request update metadata arsip (file tidak bisa diganti, upload baru saja)
type UpdateArchiveRequest struct {
	ArchiveTitle        *string    `json:"archive_title" validate:"omitempty,max=255"`
	ArchiveDescription  *string    `json:"archive_description" validate:"omitempty,max=2000"`
	ArchiveCategory     *string    `json:"archive_category" validate:"omitempty,max=100"`
	ArchiveDepartmentID *uuid.UUID `json:"archive_department_id"`
}

type ArchiveResponse struct {
	ArchiveID           uuid.UUID  `json:"archive_id"`
	ArchiveTitle        string     `json:"archive_title"`
	ArchiveDescription  string     `json:"archive_description"`
	ArchiveCategory     string     `json:"archive_category"`
	ArchiveFileURL      string     `json:"archive_file_url"`
	ArchiveFileType     string     `json:"archive_file_type"`
	ArchiveFileSize     int64      `json:"archive_file_size"`
	ArchiveDepartmentID *uuid.UUID `json:"archive_department_id,omitempty"`
	ArchiveUploadedBy   *uuid.UUID `json:"archive_uploaded_by,omitempty"`
	ArchiveCreatedAt    string     `json:"archive_created_at"`
}

func ToArchiveResponse(m *model.ArchiveModel) *ArchiveResponse {
	return &ArchiveResponse{
		ArchiveID:           m.ArchiveID,
		ArchiveTitle:        m.ArchiveTitle,
		ArchiveDescription:  m.ArchiveDescription,
		ArchiveCategory:     m.ArchiveCategory,
		ArchiveFileURL:      m.ArchiveFileURL,
		ArchiveFileType:     m.ArchiveFileType,
		ArchiveFileSize:     m.ArchiveFileSize,
		ArchiveDepartmentID: m.ArchiveDepartmentID,
		ArchiveUploadedBy:   m.ArchiveUploadedBy,
		ArchiveCreatedAt:    m.ArchiveCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToArchiveResponseList(models []model.ArchiveModel) []ArchiveResponse {
	result := make([]ArchiveResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToArchiveResponse(&m))
	}
	return result
}
