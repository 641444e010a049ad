package entities

import (
	"strconv"
	"strings"
	"time"
)

// AppointmentStatus is used both for real scheduled appointments and for ones
// synthesized from client/invoice data. It is not a strict lifecycle.

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusWaiting    AppointmentStatus = "waiting"
)

type AppointmentType string

const (
	AppointmentTypeRepair        AppointmentType = "repair"
	AppointmentTypeMaintenance   AppointmentType = "maintenance"
	AppointmentTypeInspection    AppointmentType = "inspection"
	AppointmentTypeInvoice       AppointmentType = "invoice"
	AppointmentTypeDelivery      AppointmentType = "delivery"
	AppointmentTypeDocumentation AppointmentType = "documentation"
)

// ProvenanceKind tags where an appointment came from. The zero value means a
// real, persisted appointment; the synthetic kinds are produced by
// reconciliation and never stored.

type ProvenanceKind string

const (
	ProvenanceReal             ProvenanceKind = ""
	ProvenanceSyntheticDropOff ProvenanceKind = "synthetic-dropoff"
	ProvenanceSyntheticWork    ProvenanceKind = "synthetic-work"
	ProvenanceSyntheticInvoice ProvenanceKind = "synthetic-invoice"
)

// Provenance records the origin of a synthesized appointment: which kind of
// event it stands for and the id of the client/invoice it was derived from.
type Provenance struct {
	Kind     ProvenanceKind `json:"kind,omitempty"`
	SourceID string         `json:"source_id,omitempty"`
}

// Appointment is a calendar entry. Real appointments are persisted in
// DynamoDB (PK: id); synthesized ones exist only for the duration of a
// reconciliation pass.
//
// For synthesized appointments the ID keeps the legacy string-prefix form
// ("client-dropoff-", "client-work-", "invoice-" + source id) for wire
// compatibility with the existing frontend; Provenance is the authoritative
// origin tag.
type Appointment struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Date        time.Time         `json:"date"`
	Time        string            `json:"time"`
	ClientID    string            `json:"client_id,omitempty"`
	ClientName  string            `json:"client_name,omitempty"`
	VehicleInfo string            `json:"vehicle_info,omitempty"`
	Type        AppointmentType   `json:"type"`
	Status      AppointmentStatus `json:"status"`
	Description string            `json:"description,omitempty"`
	InvoiceID   string            `json:"invoice_id,omitempty"`
	CreatedBy   string            `json:"created_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	Provenance  Provenance        `json:"provenance,omitempty"`
}

// IsSynthetic reports whether the appointment was produced by reconciliation
// rather than loaded from the store.
func (a Appointment) IsSynthetic() bool {
	return a.Provenance.Kind != ProvenanceReal
}

// TimeOfDay formats a timestamp as the HH:mm string carried alongside Date.
func TimeOfDay(t time.Time) string {
	return t.Format("15:04")
}

// FormatVehicle renders CarDetails as "year make model", or a fixed fallback
// when the details are absent.
func FormatVehicle(cd *CarDetails) string {
	if cd == nil {
		return "Vehicle info not available"
	}
	parts := make([]string, 0, 3)
	if cd.Year != 0 {
		parts = append(parts, strconv.Itoa(cd.Year))
	}
	if cd.Make != "" {
		parts = append(parts, cd.Make)
	}
	if cd.Model != "" {
		parts = append(parts, cd.Model)
	}
	if len(parts) == 0 {
		return "Vehicle info not available"
	}
	return strings.Join(parts, " ")
}
