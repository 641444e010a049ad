package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"garage_api/internal/domain/entities"
	mock_interfaces "garage_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newAppointmentFixture(ctrl *gomock.Controller) (*AppointmentUseCase, *mock_interfaces.MockIAppointmentRepository, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockIInvoiceRepository) {
	repo := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
	invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	return NewAppointmentUseCase(repo, clientRepo, invoiceRepo), repo, clientRepo, invoiceRepo
}

func TestAppointmentUseCase_ListForRange(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	// The store is queried day-granular: through the end of to's day.
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("invalid range", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, nil, nil)
		if _, err := uc.ListForRange(context.Background(), to, from); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
		if _, err := uc.ListForRange(context.Background(), time.Time{}, to); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("store rows win", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		stored := []entities.Appointment{{ID: "a-1", Title: "Oil change"}}
		repo.EXPECT().ListByDateRange(gomock.Any(), from, end).Return(stored, nil)

		got, err := uc.ListForRange(context.Background(), from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a-1" {
			t.Fatalf("expected stored rows, got %+v", got)
		}
	})

	t.Run("store error never falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		repo.EXPECT().ListByDateRange(gomock.Any(), from, end).Return(nil, errors.New("db"))

		_, err := uc.ListForRange(context.Background(), from, to)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty store reconciles from clients and invoices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, clientRepo, invoiceRepo := newAppointmentFixture(ctrl)

		repo.EXPECT().ListByDateRange(gomock.Any(), from, end).Return(nil, nil)
		clientRepo.EXPECT().List(gomock.Any()).Return([]entities.Client{{
			ID:           "c-1",
			ClientName:   "Alice",
			CreatedAt:    time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
			RepairStatus: entities.RepairStatusInProgress,
		}}, nil)
		invoiceRepo.EXPECT().List(gomock.Any()).Return([]entities.Invoice{{
			ID:        "i-1",
			CreatedAt: time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
		}}, nil)

		got, err := uc.ListForRange(context.Background(), from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 2 per client + 1 per invoice, all within March.
		if len(got) != 3 {
			t.Fatalf("expected 3 synthesized appointments, got %d", len(got))
		}
		for _, a := range got {
			if !a.IsSynthetic() {
				t.Fatalf("expected synthetic provenance on %s", a.ID)
			}
		}
	})

	t.Run("same-day window sees afternoon store rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		nextDay := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

		// from == to must still cover the whole day, otherwise a 14:00
		// appointment is invisible to the store query and gets shadowed by
		// its synthetic counterpart.
		stored := []entities.Appointment{{
			ID:    "a-1",
			Title: "Brake job",
			Date:  time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
		}}
		repo.EXPECT().ListByDateRange(gomock.Any(), day, nextDay).Return(stored, nil)

		got, err := uc.ListForRange(context.Background(), day, day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "a-1" {
			t.Fatalf("expected the stored afternoon row, got %+v", got)
		}
		if got[0].IsSynthetic() {
			t.Fatalf("store rows must never be replaced by synthetics")
		}
	})

	t.Run("synthesized rows outside the window are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, clientRepo, invoiceRepo := newAppointmentFixture(ctrl)

		repo.EXPECT().ListByDateRange(gomock.Any(), from, end).Return([]entities.Appointment{}, nil)
		clientRepo.EXPECT().List(gomock.Any()).Return([]entities.Client{{
			ID:         "c-1",
			ClientName: "Bob",
			CreatedAt:  time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), // drop-off in January
		}}, nil)
		invoiceRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := uc.ListForRange(context.Background(), from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no rows in March, got %d", len(got))
		}
	})

	t.Run("client fetch error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, clientRepo, _ := newAppointmentFixture(ctrl)

		repo.EXPECT().ListByDateRange(gomock.Any(), from, end).Return(nil, nil)
		clientRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListForRange(context.Background(), from, to)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAppointmentUseCase_Create(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Appointment{Date: time.Now()})
		if !errors.Is(err, ErrInvalidAppointmentTitle) {
			t.Fatalf("expected ErrInvalidAppointmentTitle, got %v", err)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		uc := NewAppointmentUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Appointment{Title: "Inspection"})
		if !errors.Is(err, ErrInvalidAppointmentDate) {
			t.Fatalf("expected ErrInvalidAppointmentDate, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		date := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.ID == "" {
					t.Fatalf("expected generated id")
				}
				if a.Time != "14:30" {
					t.Fatalf("expected derived time, got %q", a.Time)
				}
				if a.Status != entities.AppointmentStatusScheduled {
					t.Fatalf("expected scheduled default, got %s", a.Status)
				}
				if a.IsSynthetic() {
					t.Fatalf("created appointments must be real")
				}
				return a, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Appointment{Title: "Inspection", Date: date}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAppointmentUseCase_Update(t *testing.T) {
	t.Run("synthetic id redirects to create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		// No GetByID/Update: the synthetic row has no backing record.
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.ID == "client-work-c1" {
					t.Fatalf("expected a fresh id, got the synthetic one")
				}
				return a, nil
			},
		)

		created, err := uc.Update(context.Background(), "client-work-c1", entities.Appointment{
			Title: "Rescheduled service",
			Date:  time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.IsSynthetic() {
			t.Fatalf("expected a real appointment, got %+v", created)
		}
	})

	t.Run("real id updates in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		existing := entities.Appointment{
			ID:        "a-1",
			Title:     "Inspection",
			Date:      time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		}
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Appointment) (entities.Appointment, error) {
				if a.ID != "a-1" {
					t.Fatalf("id must be preserved, got %s", a.ID)
				}
				if !a.CreatedAt.Equal(existing.CreatedAt) {
					t.Fatalf("created_at must be preserved")
				}
				return a, nil
			},
		)

		_, err := uc.Update(context.Background(), "a-1", entities.Appointment{Title: "Inspection", Date: existing.Date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("real id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "a-404").Return(entities.Appointment{}, nil)

		_, err := uc.Update(context.Background(), "a-404", entities.Appointment{Title: "X", Date: time.Now()})
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})
}

func TestAppointmentUseCase_Delete(t *testing.T) {
	t.Run("synthetic id is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newAppointmentFixture(ctrl)

		// No repository expectation: nothing must reach the store.
		if err := uc.Delete(context.Background(), "invoice-7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("real id deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		repo.EXPECT().Delete(gomock.Any(), "a-1").Return(nil)

		if err := uc.Delete(context.Background(), "a-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAppointmentUseCase_UpdateStatus(t *testing.T) {
	t.Run("repair-linked appointment propagates to client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, clientRepo, _ := newAppointmentFixture(ctrl)

		repo.EXPECT().UpdateStatus(gomock.Any(), "a-1", entities.AppointmentStatusCompleted).
			Return(entities.Appointment{ID: "a-1", ClientID: "c-1", Type: entities.AppointmentTypeRepair, Status: entities.AppointmentStatusCompleted}, nil)
		clientRepo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.RepairStatusCompleted).
			Return(entities.Client{ID: "c-1"}, nil)

		got, err := uc.UpdateStatus(context.Background(), "a-1", entities.AppointmentStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.AppointmentStatusCompleted {
			t.Fatalf("unexpected status: %s", got.Status)
		}
	})

	t.Run("scheduled maps back to waiting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, clientRepo, _ := newAppointmentFixture(ctrl)

		repo.EXPECT().UpdateStatus(gomock.Any(), "a-1", entities.AppointmentStatusScheduled).
			Return(entities.Appointment{ID: "a-1", ClientID: "c-1", Type: entities.AppointmentTypeDelivery, Status: entities.AppointmentStatusScheduled}, nil)
		clientRepo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.RepairStatusWaiting).
			Return(entities.Client{ID: "c-1"}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "a-1", entities.AppointmentStatusScheduled); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invoice appointment does not touch clients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		repo.EXPECT().UpdateStatus(gomock.Any(), "a-2", entities.AppointmentStatusCancelled).
			Return(entities.Appointment{ID: "a-2", ClientID: "c-1", Type: entities.AppointmentTypeInvoice, Status: entities.AppointmentStatusCancelled}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "a-2", entities.AppointmentStatusCancelled); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("synthetic work id propagates to the job only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, clientRepo, _ := newAppointmentFixture(ctrl)

		clientRepo.EXPECT().UpdateStatus(gomock.Any(), "c-9", entities.RepairStatusInProgress).
			Return(entities.Client{ID: "c-9"}, nil)

		got, err := uc.UpdateStatus(context.Background(), "client-work-c-9", entities.AppointmentStatusInProgress)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "client-work-c-9" {
			t.Fatalf("unexpected id: %s", got.ID)
		}
	})

	t.Run("other synthetic ids have nothing to update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newAppointmentFixture(ctrl)

		_, err := uc.UpdateStatus(context.Background(), "client-dropoff-c-9", entities.AppointmentStatusCancelled)
		if !errors.Is(err, ErrSyntheticAppointment) {
			t.Fatalf("expected ErrSyntheticAppointment, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newAppointmentFixture(ctrl)

		repo.EXPECT().UpdateStatus(gomock.Any(), "a-404", entities.AppointmentStatusCompleted).
			Return(entities.Appointment{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "a-404", entities.AppointmentStatusCompleted)
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})
}
