package response

import (
	"time"

	"garage_api/internal/domain/entities"
	"garage_api/internal/domain/status"
)

type AppointmentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	ClientID    string    `json:"client_id,omitempty"`
	ClientName  string    `json:"client_name,omitempty"`
	VehicleInfo string    `json:"vehicle_info,omitempty"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	StatusColor string    `json:"status_color"`
	Description string    `json:"description,omitempty"`
	InvoiceID   string    `json:"invoice_id,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Synthetic   bool      `json:"synthetic"`
}

func FromAppointment(a entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		Date:        a.Date,
		Time:        a.Time,
		ClientID:    a.ClientID,
		ClientName:  a.ClientName,
		VehicleInfo: a.VehicleInfo,
		Type:        string(a.Type),
		Status:      string(a.Status),
		StatusColor: string(status.Color(string(a.Status), status.DomainAppointment)),
		Description: a.Description,
		InvoiceID:   a.InvoiceID,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
		Synthetic:   a.IsSynthetic(),
	}
}

func FromAppointments(appointments []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, FromAppointment(a))
	}
	return out
}
