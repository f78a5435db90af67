package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArchiveModel struct {
	ArchiveID           uuid.UUID  `gorm:"column:archive_id;type:uuid;default:gen_random_uuid();primaryKey" json:"archive_id"`
	ArchiveTitle        string     `gorm:"column:archive_title;type:varchar(255);not null"                  json:"archive_title"`
	ArchiveDescription  string     `gorm:"column:archive_description;type:text"                             json:"archive_description"`
	ArchiveCategory     string     `gorm:"column:archive_category;type:varchar(100)"                        json:"archive_category"`
	ArchiveFileURL      string     `gorm:"column:archive_file_url;type:text;not null"                       json:"archive_file_url"`
	ArchiveFileType     string     `gorm:"column:archive_file_type;type:varchar(50)"                        json:"archive_file_type"`
	ArchiveFileSize     int64      `gorm:"column:archive_file_size"                                         json:"archive_file_size"`
	ArchiveDepartmentID *uuid.UUID `gorm:"column:archive_department_id;type:uuid;index"                     json:"archive_department_id,omitempty"`
	ArchiveUploadedBy   *uuid.UUID `gorm:"column:archive_uploaded_by;type:uuid"                             json:"archive_uploaded_by,omitempty"`

	ArchiveCreatedAt time.Time      `gorm:"column:archive_created_at;type:timestamptz;autoCreateTime" json:"archive_created_at"`
	ArchiveUpdatedAt time.Time      `gorm:"column:archive_updated_at;type:timestamptz;autoUpdateTime" json:"archive_updated_at"`
	ArchiveDeletedAt gorm.DeletedAt `gorm:"column:archive_deleted_at;type:timestamptz;index"          json:"archive_deleted_at,omitempty"`
}

func (ArchiveModel) TableName() string {
	return "archives"
}
