package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status kegiatan
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type EventModel struct {
	EventID           uuid.UUID  `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventName         string     `gorm:"column:event_name;type:varchar(255);not null"                   json:"event_name"`
	EventDescription  string     `gorm:"column:event_description;type:text"                             json:"event_description"`
	EventLocation     string     `gorm:"column:event_location;type:varchar(255)"                        json:"event_location"`
	EventStartAt      time.Time  `gorm:"column:event_start_at;type:timestamptz;not null"                json:"event_start_at"`
	EventEndAt        *time.Time `gorm:"column:event_end_at;type:timestamptz"                           json:"event_end_at,omitempty"`
	EventType         string     `gorm:"column:event_type;type:varchar(50)"                             json:"event_type"`
	EventStatus       string     `gorm:"column:event_status;type:varchar(20);not null;default:upcoming" json:"event_status"`
	EventDepartmentID *uuid.UUID `gorm:"column:event_department_id;type:uuid;index"                     json:"event_department_id,omitempty"`
	EventCreatedBy    *uuid.UUID `gorm:"column:event_created_by;type:uuid"                              json:"event_created_by,omitempty"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index"          json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

func IsValidEventStatus(s string) bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}
