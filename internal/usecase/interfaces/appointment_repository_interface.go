package interfaces

import (
	"context"
	"time"

	"garage_api/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for real (persisted)
// appointments. Synthesized appointments never reach this layer.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	// ListByDateRange returns appointments with from <= date < to.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
}
