package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"garage_api/internal/domain/entities"
	"garage_api/internal/domain/reconcile"
	"garage_api/internal/domain/status"
	"garage_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrInvalidAppointmentID    = errors.New("invalid appointment id")
	ErrInvalidAppointmentDate  = errors.New("invalid appointment date")
	ErrInvalidAppointmentTitle = errors.New("invalid appointment title")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrSyntheticAppointment    = errors.New("synthetic appointment has no persisted record")
)

// IAppointmentUseCase exposes the calendar operations.
//
// The store is authoritative. Only when a range query returns zero rows does
// ListForRange fall back to appointments synthesized from client and invoice
// records; repository errors are returned as-is and never trigger the
// fallback.

type IAppointmentUseCase interface {
	ListForRange(ctx context.Context, from, to time.Time) ([]entities.Appointment, error)
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Update(ctx context.Context, id string, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, newStatus entities.AppointmentStatus) (entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo        interfaces.IAppointmentRepository
	clientRepo  interfaces.IClientRepository
	invoiceRepo interfaces.IInvoiceRepository
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(
	repo interfaces.IAppointmentRepository,
	clientRepo interfaces.IClientRepository,
	invoiceRepo interfaces.IInvoiceRepository,
) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, clientRepo: clientRepo, invoiceRepo: invoiceRepo}
}

// ListForRange returns persisted appointments whose local calendar day falls
// within [from, to]. The store query and the synthetic fallback use the same
// day-granular bounds: start of from's day, exclusive start of the day after
// to. When the store has none for that window, fallback appointments are
// synthesized from the current client and invoice collections and filtered to
// the same window.
func (u *AppointmentUseCase) ListForRange(ctx context.Context, from, to time.Time) ([]entities.Appointment, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	start := startOfDay(from)
	end := startOfDay(to).AddDate(0, 0, 1)

	real, err := u.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(real) > 0 {
		return real, nil
	}

	log.Printf("[appointment][usecase] empty window %s..%s; reconciling from clients/invoices",
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := u.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	synthesized := reconcile.FromData(clients, invoices)
	return filterRangeByDay(synthesized, from, to), nil
}

// filterRangeByDay keeps appointments whose local calendar day falls within
// [from, to], day-granular on both ends.
func filterRangeByDay(appointments []entities.Appointment, from, to time.Time) []entities.Appointment {
	start := startOfDay(from)
	end := startOfDay(to).AddDate(0, 0, 1)
	out := make([]entities.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if !a.Date.Before(start) && a.Date.Before(end) {
			out = append(out, a)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (u *AppointmentUseCase) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return entities.Appointment{}, ErrInvalidAppointmentTitle
	}
	if a.Date.IsZero() {
		return entities.Appointment{}, ErrInvalidAppointmentDate
	}

	a.ID = uuid.NewString()
	a.Provenance = entities.Provenance{}
	if a.Time == "" {
		a.Time = entities.TimeOfDay(a.Date)
	}
	if a.Status == "" {
		a.Status = entities.AppointmentStatusScheduled
	}
	if a.Type == "" {
		a.Type = entities.AppointmentTypeRepair
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	return u.repo.Create(ctx, a)
}

// Update edits a persisted appointment. Editing a synthesized appointment is
// redirected into creating a brand-new real appointment; the synthetic record
// has no backing row and is never mutated.
func (u *AppointmentUseCase) Update(ctx context.Context, id string, a entities.Appointment) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	if reconcile.IsSyntheticID(id) {
		log.Printf("[appointment][usecase] update on synthetic id=%s; creating real appointment instead", id)
		return u.Create(ctx, a)
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if existing.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}

	a.ID = id
	a.Provenance = entities.Provenance{}
	if a.Date.IsZero() {
		a.Date = existing.Date
	}
	if a.Time == "" {
		a.Time = entities.TimeOfDay(a.Date)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = existing.CreatedAt
	}

	return u.repo.Update(ctx, a)
}

// Delete removes a persisted appointment. Synthetic ids are a no-op: there is
// no backing record, the caller just drops the row from its local view.
func (u *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAppointmentID
	}
	if reconcile.IsSyntheticID(id) {
		log.Printf("[appointment][usecase] delete on synthetic id=%s; nothing to remove", id)
		return nil
	}
	return u.repo.Delete(ctx, id)
}

// UpdateStatus changes an appointment's status. When the appointment is
// linked to a repair job, the new status is translated to the repair
// vocabulary and propagated to the client record as a side effect.
//
// A synthetic work appointment ("client-work-<id>") has no row to update, but
// the linked job does: only the client-side propagation happens and the
// caller keeps its ephemeral row. Other synthetic kinds have nothing to
// update at all.
func (u *AppointmentUseCase) UpdateStatus(ctx context.Context, id string, newStatus entities.AppointmentStatus) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	if reconcile.IsSyntheticID(id) {
		clientID, ok := strings.CutPrefix(id, "client-work-")
		if !ok {
			return entities.Appointment{}, ErrSyntheticAppointment
		}
		u.propagateToClient(ctx, clientID, newStatus)
		return entities.Appointment{
			ID:     id,
			Status: newStatus,
			Provenance: entities.Provenance{
				Kind:     entities.ProvenanceSyntheticWork,
				SourceID: clientID,
			},
		}, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}

	if updated.ClientID != "" && isRepairLinked(updated.Type) {
		u.propagateToClient(ctx, updated.ClientID, newStatus)
	}

	return updated, nil
}

func isRepairLinked(t entities.AppointmentType) bool {
	switch t {
	case entities.AppointmentTypeRepair, entities.AppointmentTypeMaintenance, entities.AppointmentTypeDelivery:
		return true
	}
	return false
}

// propagateToClient mirrors an appointment status change onto the linked
// repair job. Failures are logged, not returned: the appointment update
// already happened and the job can be corrected independently.
func (u *AppointmentUseCase) propagateToClient(ctx context.Context, clientID string, newStatus entities.AppointmentStatus) {
	mapped := entities.RepairStatus(status.Map(string(newStatus), status.DomainAppointment, status.DomainRepair))
	if _, err := u.clientRepo.UpdateStatus(ctx, clientID, mapped); err != nil {
		log.Printf("[appointment][usecase] client status propagation failed client_id=%s status=%s err=%v", clientID, mapped, err)
	}
}
