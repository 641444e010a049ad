// Package reconcile synthesizes calendar appointments from client (repair
// job) and invoice records. The output is a fallback view used only when the
// authoritative appointment store has no rows for the requested window: each
// client implies a drop-off/assessment event and a work/delivery event, each
// invoice implies a review event.
//
// Synthesized appointments are ephemeral. They are rebuilt on every pass,
// never persisted, and never mutated in place; editing one must create a
// brand-new real appointment instead (see Appointment.Provenance).
package reconcile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"garage_api/internal/domain/entities"
	"garage_api/internal/domain/status"
)

// defaultRepairDays is used when a client has no estimated duration.
const defaultRepairDays = 3

// Legacy id prefixes. Synthesized ids keep this form so the existing frontend
// can keep telling real and synthetic rows apart by string prefix.
const (
	dropOffIDPrefix = "client-dropoff-"
	workIDPrefix    = "client-work-"
	invoiceIDPrefix = "invoice-"
)

// IsSyntheticID reports whether an appointment id denotes a synthesized,
// non-persisted appointment. Real appointments carry opaque UUIDs which never
// start with these prefixes.
func IsSyntheticID(id string) bool {
	return strings.HasPrefix(id, "client-") || strings.HasPrefix(id, "invoice-")
}

// FromClients emits two appointments per client: the vehicle drop-off /
// initial assessment, and the ongoing-or-delivered work item. The slice index
// stands in for the client id when the record has none.
func FromClients(clients []entities.Client) []entities.Appointment {
	out := make([]entities.Appointment, 0, 2*len(clients))
	now := time.Now()

	for i, c := range clients {
		sourceID := c.ID
		if sourceID == "" {
			sourceID = strconv.Itoa(i)
		}

		dropOff := c.CreatedAt
		if dropOff.IsZero() {
			dropOff = now
		}

		description := c.IssueDescription
		if description == "" {
			description = fmt.Sprintf("Vehicle drop-off and initial assessment for %s", c.ClientName)
		}

		vehicle := entities.FormatVehicle(c.CarDetails)

		// The assessment is always considered done, whatever the job's
		// current repair status.
		out = append(out, entities.Appointment{
			ID:          dropOffIDPrefix + sourceID,
			Title:       "Vehicle Drop-off - " + c.ClientName,
			Date:        dropOff,
			Time:        entities.TimeOfDay(dropOff),
			ClientID:    c.ID,
			ClientName:  c.ClientName,
			VehicleInfo: vehicle,
			Type:        entities.AppointmentTypeInspection,
			Status:      entities.AppointmentStatusCompleted,
			Description: description,
			CreatedBy:   c.CreatedBy,
			CreatedAt:   dropOff,
			Provenance:  entities.Provenance{Kind: entities.ProvenanceSyntheticDropOff, SourceID: sourceID},
		})

		out = append(out, workAppointment(c, sourceID, dropOff))
	}
	return out
}

func workAppointment(c entities.Client, sourceID string, dropOff time.Time) entities.Appointment {
	workDate := resolveWorkDate(c, dropOff)

	repairStatus := c.RepairStatus
	if repairStatus == "" {
		repairStatus = entities.RepairStatusWaiting
	}

	apptStatus := entities.AppointmentStatus(status.Map(string(repairStatus), status.DomainRepair, status.DomainAppointment))
	if apptStatus == "" {
		apptStatus = entities.AppointmentStatusScheduled
	}

	apptType := entities.AppointmentTypeRepair
	if repairStatus == entities.RepairStatusDelivered {
		apptType = entities.AppointmentTypeDelivery
	}

	var title string
	switch repairStatus {
	case entities.RepairStatusDelivered:
		title = "Delivery - " + c.ClientName
	case entities.RepairStatusCompleted:
		title = "Completed - " + c.ClientName
	default:
		title = "Service - " + c.ClientName
	}

	return entities.Appointment{
		ID:          workIDPrefix + sourceID,
		Title:       title,
		Date:        workDate,
		Time:        entities.TimeOfDay(workDate),
		ClientID:    c.ID,
		ClientName:  c.ClientName,
		VehicleInfo: entities.FormatVehicle(c.CarDetails),
		Type:        apptType,
		Status:      apptStatus,
		Description: c.IssueDescription,
		CreatedBy:   c.CreatedBy,
		// CreatedAt reflects job intake, not the scheduled work date.
		CreatedAt:  dropOff,
		Provenance: entities.Provenance{Kind: entities.ProvenanceSyntheticWork, SourceID: sourceID},
	}
}

// resolveWorkDate picks the work/delivery date: the explicit delivery date
// when present, otherwise drop-off plus the estimated duration in days
// (default 3).
func resolveWorkDate(c entities.Client, dropOff time.Time) time.Time {
	if c.DeliveryDate != nil && !c.DeliveryDate.IsZero() {
		return *c.DeliveryDate
	}
	days := c.EstimatedDuration
	if days <= 0 {
		days = defaultRepairDays
	}
	return dropOff.AddDate(0, 0, days)
}

// FromInvoices emits one "Invoice Review" appointment per invoice.
func FromInvoices(invoices []entities.Invoice) []entities.Appointment {
	out := make([]entities.Appointment, 0, len(invoices))
	now := time.Now()

	for i, inv := range invoices {
		sourceID := inv.ID
		if sourceID == "" {
			sourceID = strconv.Itoa(i)
		}

		date := resolveInvoiceDate(inv, now)
		name := resolveCustomerName(inv, i)
		number := inv.InvoiceNumber
		if number == "" {
			number = strconv.Itoa(i + 1)
		}

		out = append(out, entities.Appointment{
			ID:          invoiceIDPrefix + sourceID,
			Title:       "Invoice Review - " + name,
			Date:        date,
			Time:        entities.TimeOfDay(date),
			ClientID:    resolveInvoiceClientID(inv),
			ClientName:  name,
			VehicleInfo: entities.FormatVehicle(inv.VehicleInfo),
			Type:        entities.AppointmentTypeInvoice,
			Status:      entities.AppointmentStatusScheduled,
			Description: "Review invoice #" + number,
			InvoiceID:   inv.ID,
			CreatedBy:   inv.CreatedBy,
			CreatedAt:   date,
			Provenance:  entities.Provenance{Kind: entities.ProvenanceSyntheticInvoice, SourceID: sourceID},
		})
	}
	return out
}

// resolveInvoiceDate: created-at first, issue date second, now last.
func resolveInvoiceDate(inv entities.Invoice, now time.Time) time.Time {
	if !inv.CreatedAt.IsZero() {
		return inv.CreatedAt
	}
	if !inv.IssueDate.IsZero() {
		return inv.IssueDate
	}
	return now
}

// resolveCustomerName: structured customer info first, legacy flat field
// second, a positional placeholder last.
func resolveCustomerName(inv entities.Invoice, idx int) string {
	if inv.CustomerInfo != nil && inv.CustomerInfo.Name != "" {
		return inv.CustomerInfo.Name
	}
	if inv.CustomerName != "" {
		return inv.CustomerName
	}
	return "Customer " + strconv.Itoa(idx+1)
}

// resolveInvoiceClientID: structured customer info first, legacy flat field
// second, empty last.
func resolveInvoiceClientID(inv entities.Invoice) string {
	if inv.CustomerInfo != nil && inv.CustomerInfo.ID != "" {
		return inv.CustomerInfo.ID
	}
	return inv.ClientID
}

// FromData concatenates client-derived and invoice-derived appointments:
// drop-off/work pairs per client in input order, then invoice items in input
// order. No sorting; consumers needing calendar order sort explicitly.
func FromData(clients []entities.Client, invoices []entities.Invoice) []entities.Appointment {
	return append(FromClients(clients), FromInvoices(invoices)...)
}

// FilterForDay selects appointments falling on the given local calendar day.
// The comparison decomposes both sides into (year, month, day); a timestamp
// subtraction window would misplace entries near midnight across timezones.
func FilterForDay(appointments []entities.Appointment, day time.Time) []entities.Appointment {
	y, m, d := day.Date()
	out := make([]entities.Appointment, 0, len(appointments))
	for _, a := range appointments {
		ay, am, ad := a.Date.Date()
		if ay == y && am == m && ad == d {
			out = append(out, a)
		}
	}
	return out
}
