package status

import "garage_api/internal/domain/entities"

// Domain identifies which vocabulary a status string belongs to. The garage
// works with four loosely-related vocabularies: repair jobs, calendar
// appointments, invoices and payment settlement.

type Domain string

const (
	DomainRepair      Domain = "repair"
	DomainAppointment Domain = "appointment"
	DomainInvoice     Domain = "invoice"
	DomainPayment     Domain = "payment"
)

// translations holds the supported cross-vocabulary mappings, keyed by
// (from, to). Built once at init; never mutated afterwards.
//
// Only four pairs are defined. Everything else (including appointment ->
// invoice, which invoice-linked appointments would seem to need) is
// deliberately absent: Map falls back to identity for unsupported pairs so
// callers never deal with an error case. The cost is that typos and statuses
// added to one vocabulary pass through untranslated.
var translations = map[Domain]map[Domain]map[string]string{
	DomainRepair: {
		DomainAppointment: {
			"waiting":     "scheduled",
			"in_progress": "in_progress",
			"completed":   "completed",
			"delivered":   "completed",
			"cancelled":   "cancelled",
		},
		DomainInvoice: {
			"waiting":     "draft",
			"in_progress": "draft",
			"completed":   "pending",
			"delivered":   "pending",
			"cancelled":   "cancelled",
		},
	},
	DomainAppointment: {
		DomainRepair: {
			"scheduled":   "waiting",
			"in_progress": "in_progress",
			"completed":   "completed",
			"cancelled":   "cancelled",
		},
	},
	DomainInvoice: {
		DomainPayment: {
			"paid":      "paid",
			"pending":   "not_paid",
			"draft":     "not_paid",
			"overdue":   "not_paid",
			"cancelled": "not_paid",
		},
	},
}

// Map translates a status value from one vocabulary to another.
//
// When the (from, to) pair is unsupported, or the value is not a key of the
// selected table, the input is returned unchanged. Pure and O(1).
func Map(status string, from, to Domain) string {
	byTo, ok := translations[from]
	if !ok {
		return status
	}
	table, ok := byTo[to]
	if !ok {
		return status
	}
	mapped, ok := table[status]
	if !ok {
		return status
	}
	return mapped
}

// ColorTag is a symbolic presentation tag for a status value, resolved by the
// frontend to its theme palette.

type ColorTag string

const (
	ColorSuccess ColorTag = "success"
	ColorWarning ColorTag = "warning"
	ColorError   ColorTag = "error"
	ColorInfo    ColorTag = "info"
	ColorPrimary ColorTag = "primary"
	ColorDefault ColorTag = "default"
)

var repairColors = map[string]ColorTag{
	"waiting":     ColorWarning,
	"in_progress": ColorInfo,
	"completed":   ColorSuccess,
	"delivered":   ColorPrimary,
	"cancelled":   ColorError,
}

var appointmentColors = map[string]ColorTag{
	"scheduled":   ColorPrimary,
	"in_progress": ColorInfo,
	"completed":   ColorSuccess,
	"cancelled":   ColorError,
	"waiting":     ColorWarning,
}

var invoiceColors = map[string]ColorTag{
	"draft":     ColorDefault,
	"pending":   ColorWarning,
	"paid":      ColorSuccess,
	"overdue":   ColorError,
	"cancelled": ColorError,
}

var paymentColors = map[string]ColorTag{
	"paid":     ColorSuccess,
	"not_paid": ColorError,
	"partial":  ColorWarning,
}

var colorsByDomain = map[Domain]map[string]ColorTag{
	DomainRepair:      repairColors,
	DomainAppointment: appointmentColors,
	DomainInvoice:     invoiceColors,
	DomainPayment:     paymentColors,
}

// Color returns the presentation tag for a status within its own vocabulary.
// Unknown statuses and unknown domains resolve to ColorDefault.
func Color(status string, d Domain) ColorTag {
	table, ok := colorsByDomain[d]
	if !ok {
		return ColorDefault
	}
	c, ok := table[status]
	if !ok {
		return ColorDefault
	}
	return c
}

// doneRepairStates are the "work finished" repair states that warrant billing.
var doneRepairStates = map[entities.RepairStatus]bool{
	entities.RepairStatusCompleted: true,
	entities.RepairStatusDelivered: true,
}

// ShouldCreateInvoice reports whether a repair status transition should prompt
// the user to generate a billing document: the job moves into completed or
// delivered from a state that was not already one of those. It is advisory
// only; invoice creation remains a separate, user-confirmed operation.
func ShouldCreateInvoice(old, new entities.RepairStatus) bool {
	return !doneRepairStates[old] && doneRepairStates[new]
}

// allowedRepairTransitions encodes the monotonic repair lifecycle:
// waiting -> in_progress -> completed -> delivered, with cancellation
// reachable from any non-terminal state.
var allowedRepairTransitions = map[entities.RepairStatus]map[entities.RepairStatus]bool{
	entities.RepairStatusWaiting: {
		entities.RepairStatusInProgress: true,
		entities.RepairStatusCancelled:  true,
	},
	entities.RepairStatusInProgress: {
		entities.RepairStatusCompleted: true,
		entities.RepairStatusCancelled: true,
	},
	entities.RepairStatusCompleted: {
		entities.RepairStatusDelivered: true,
		entities.RepairStatusCancelled: true,
	},
	entities.RepairStatusDelivered: {},
	entities.RepairStatusCancelled: {},
}

// CanTransition reports whether a repair job may move from one status to
// another. Unknown source statuses admit no transitions.
func CanTransition(from, to entities.RepairStatus) bool {
	m, ok := allowedRepairTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}
