package dto

import (
	"time"

	"github.com/google/uuid"

	"fkmb_backend/internals/features/activities/events/model"
)

// 🔹 Request membuat kegiatan
type CreateEventRequest struct {
	EventName         string     `json:"event_name" validate:"required,max=255"`
	EventDescription  string     `json:"event_description" validate:"omitempty,max=2000"`
	EventLocation     string     `json:"event_location" validate:"omitempty,max=255"`
	EventStartAt      time.Time  `json:"event_start_at" validate:"required"`
	EventEndAt        *time.Time `json:"event_end_at"`
	EventType         string     `json:"event_type" validate:"omitempty,max=50"`
	EventDepartmentID *uuid.UUID `json:"event_department_id"`
}

// 🔹 Request update kegiatan
type UpdateEventRequest struct {
	EventName         *string    `json:"event_name" validate:"omitempty,max=255"`
	EventDescription  *string    `json:"event_description" validate:"omitempty,max=2000"`
	EventLocation     *string    `json:"event_location" validate:"omitempty,max=255"`
	EventStartAt      *time.Time `json:"event_start_at"`
	EventEndAt        *time.Time `json:"event_end_at"`
	EventType         *string    `json:"event_type" validate:"omitempty,max=50"`
	EventStatus       *string    `json:"event_status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	EventDepartmentID *uuid.UUID `json:"event_department_id"`
}

type EventResponse struct {
	EventID           uuid.UUID  `json:"event_id"`
	EventName         string     `json:"event_name"`
	EventDescription  string     `json:"event_description"`
	EventLocation     string     `json:"event_location"`
	EventStartAt      time.Time  `json:"event_start_at"`
	EventEndAt        *time.Time `json:"event_end_at,omitempty"`
	EventType         string     `json:"event_type"`
	EventStatus       string     `json:"event_status"`
	EventDepartmentID *uuid.UUID `json:"event_department_id,omitempty"`
	EventCreatedAt    string     `json:"event_created_at"`
}

func (r *CreateEventRequest) ToModel(createdBy *uuid.UUID) *model.EventModel {
	return &model.EventModel{
		EventName:         r.EventName,
		EventDescription:  r.EventDescription,
		EventLocation:     r.EventLocation,
		EventStartAt:      r.EventStartAt,
		EventEndAt:        r.EventEndAt,
		EventType:         r.EventType,
		EventStatus:       model.EventStatusUpcoming,
		EventDepartmentID: r.EventDepartmentID,
		EventCreatedBy:    createdBy,
	}
}

func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:           m.EventID,
		EventName:         m.EventName,
		EventDescription:  m.EventDescription,
		EventLocation:     m.EventLocation,
		EventStartAt:      m.EventStartAt,
		EventEndAt:        m.EventEndAt,
		EventType:         m.EventType,
		EventStatus:       m.EventStatus,
		EventDepartmentID: m.EventDepartmentID,
		EventCreatedAt:    m.EventCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToEventResponse(&m))
	}
	return result
}
