package repository

import (
	"strings"
	"testing"
	"time"

	"garage_api/internal/domain/entities"
)

func TestAppointmentItemDateFormat(t *testing.T) {
	t.Run("date is whole-second and fixed-width", func(t *testing.T) {
		a := entities.Appointment{
			ID:        "a-1",
			Title:     "Brake job",
			Date:      time.Date(2024, 3, 5, 14, 0, 0, 500_000_000, time.UTC),
			CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 123_456_789, time.UTC),
		}

		it := toAppointmentItem(a)
		if it.Date != "2024-03-05T14:00:00Z" {
			t.Fatalf("unexpected date attribute: %s", it.Date)
		}
		if strings.Contains(it.Date, ".") {
			t.Fatalf("date attribute must not carry fractional seconds: %s", it.Date)
		}
		// created_at is never string-compared and keeps full precision.
		if !strings.Contains(it.CreatedAt, ".123456789") {
			t.Fatalf("created_at lost precision: %s", it.CreatedAt)
		}
	})

	t.Run("lexical order matches time order across a range bound", func(t *testing.T) {
		// With fractional seconds ('.' < 'Z') a later instant would sort
		// before the bound and slip out of the filter window.
		bound := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
		inside := toAppointmentItem(entities.Appointment{
			Date: time.Date(2024, 3, 5, 23, 59, 59, 900_000_000, time.UTC),
		})
		if inside.Date >= bound {
			t.Fatalf("appointment at %s must sort before bound %s", inside.Date, bound)
		}
	})

	t.Run("roundtrip keeps second precision", func(t *testing.T) {
		a := entities.Appointment{
			ID:   "a-2",
			Date: time.Date(2024, 3, 5, 14, 30, 45, 0, time.UTC),
		}
		got := fromAppointmentItem(toAppointmentItem(a))
		if !got.Date.Equal(a.Date) {
			t.Fatalf("expected %s, got %s", a.Date, got.Date)
		}
	})
}
