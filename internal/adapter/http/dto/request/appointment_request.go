package request

import (
	"strings"
	"time"

	"garage_api/internal/domain/entities"
)

// AppointmentRequest is the payload for creating or editing an appointment.
// Edits addressed at a synthesized appointment id are turned into a create by
// the use case; the payload shape is the same either way.
type AppointmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name"`
	VehicleInfo string    `json:"vehicle_info"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	InvoiceID   string    `json:"invoice_id"`
	CreatedBy   string    `json:"created_by"`
}

func (r AppointmentRequest) ToEntity() entities.Appointment {
	return entities.Appointment{
		Title:       strings.TrimSpace(r.Title),
		Date:        r.Date,
		Time:        r.Time,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		VehicleInfo: r.VehicleInfo,
		Type:        entities.AppointmentType(r.Type),
		Status:      entities.AppointmentStatus(r.Status),
		Description: r.Description,
		InvoiceID:   r.InvoiceID,
		CreatedBy:   r.CreatedBy,
	}
}

// AppointmentStatusRequest carries an appointment status change.
type AppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r AppointmentStatusRequest) ResolveStatus() entities.AppointmentStatus {
	return entities.AppointmentStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}
