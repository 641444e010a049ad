package status

import (
	"testing"

	"garage_api/internal/domain/entities"
)

func TestMap_SupportedPairs(t *testing.T) {
	cases := []struct {
		name string
		in   string
		from Domain
		to   Domain
		want string
	}{
		{"repair waiting to appointment", "waiting", DomainRepair, DomainAppointment, "scheduled"},
		{"repair in_progress to appointment", "in_progress", DomainRepair, DomainAppointment, "in_progress"},
		{"repair completed to appointment", "completed", DomainRepair, DomainAppointment, "completed"},
		{"repair delivered to appointment", "delivered", DomainRepair, DomainAppointment, "completed"},
		{"repair cancelled to appointment", "cancelled", DomainRepair, DomainAppointment, "cancelled"},

		{"appointment scheduled to repair", "scheduled", DomainAppointment, DomainRepair, "waiting"},
		{"appointment in_progress to repair", "in_progress", DomainAppointment, DomainRepair, "in_progress"},
		{"appointment completed to repair", "completed", DomainAppointment, DomainRepair, "completed"},
		{"appointment cancelled to repair", "cancelled", DomainAppointment, DomainRepair, "cancelled"},

		{"repair waiting to invoice", "waiting", DomainRepair, DomainInvoice, "draft"},
		{"repair in_progress to invoice", "in_progress", DomainRepair, DomainInvoice, "draft"},
		{"repair completed to invoice", "completed", DomainRepair, DomainInvoice, "pending"},
		{"repair delivered to invoice", "delivered", DomainRepair, DomainInvoice, "pending"},
		{"repair cancelled to invoice", "cancelled", DomainRepair, DomainInvoice, "cancelled"},

		{"invoice paid to payment", "paid", DomainInvoice, DomainPayment, "paid"},
		{"invoice pending to payment", "pending", DomainInvoice, DomainPayment, "not_paid"},
		{"invoice draft to payment", "draft", DomainInvoice, DomainPayment, "not_paid"},
		{"invoice overdue to payment", "overdue", DomainInvoice, DomainPayment, "not_paid"},
		{"invoice cancelled to payment", "cancelled", DomainInvoice, DomainPayment, "not_paid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Map(tc.in, tc.from, tc.to); got != tc.want {
				t.Fatalf("Map(%q, %s, %s) = %q, want %q", tc.in, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestMap_IdentityFallback(t *testing.T) {
	all := []Domain{DomainRepair, DomainAppointment, DomainInvoice, DomainPayment}
	supported := map[[2]Domain]bool{
		{DomainRepair, DomainAppointment}: true,
		{DomainAppointment, DomainRepair}: true,
		{DomainRepair, DomainInvoice}:     true,
		{DomainInvoice, DomainPayment}:    true,
	}

	t.Run("unsupported pairs pass the input through", func(t *testing.T) {
		for _, from := range all {
			for _, to := range all {
				if supported[[2]Domain{from, to}] {
					continue
				}
				for _, s := range []string{"waiting", "paid", "scheduled", "bogus", ""} {
					if got := Map(s, from, to); got != s {
						t.Fatalf("Map(%q, %s, %s) = %q, want identity", s, from, to, got)
					}
				}
			}
		}
	})

	t.Run("unknown key passes through on a supported pair", func(t *testing.T) {
		if got := Map("bogus", DomainRepair, DomainAppointment); got != "bogus" {
			t.Fatalf("expected passthrough, got %q", got)
		}
	})

	t.Run("unknown domain passes through", func(t *testing.T) {
		if got := Map("waiting", Domain("client"), DomainAppointment); got != "waiting" {
			t.Fatalf("expected passthrough, got %q", got)
		}
	})
}

func TestColor(t *testing.T) {
	cases := []struct {
		status string
		domain Domain
		want   ColorTag
	}{
		{"waiting", DomainRepair, ColorWarning},
		{"delivered", DomainRepair, ColorPrimary},
		{"scheduled", DomainAppointment, ColorPrimary},
		{"cancelled", DomainAppointment, ColorError},
		{"pending", DomainInvoice, ColorWarning},
		{"overdue", DomainInvoice, ColorError},
		{"draft", DomainInvoice, ColorDefault},
		{"paid", DomainPayment, ColorSuccess},
		{"partial", DomainPayment, ColorWarning},
		{"bogus", DomainRepair, ColorDefault},
		{"paid", Domain("unknown"), ColorDefault},
	}
	for _, tc := range cases {
		if got := Color(tc.status, tc.domain); got != tc.want {
			t.Fatalf("Color(%q, %s) = %q, want %q", tc.status, tc.domain, got, tc.want)
		}
	}
}

func TestShouldCreateInvoice(t *testing.T) {
	cases := []struct {
		name string
		old  entities.RepairStatus
		new  entities.RepairStatus
		want bool
	}{
		{"waiting to completed", entities.RepairStatusWaiting, entities.RepairStatusCompleted, true},
		{"in_progress to completed", entities.RepairStatusInProgress, entities.RepairStatusCompleted, true},
		{"in_progress to delivered", entities.RepairStatusInProgress, entities.RepairStatusDelivered, true},
		{"completed to delivered stays done", entities.RepairStatusCompleted, entities.RepairStatusDelivered, false},
		{"delivered to completed stays done", entities.RepairStatusDelivered, entities.RepairStatusCompleted, false},
		{"in_progress to cancelled", entities.RepairStatusInProgress, entities.RepairStatusCancelled, false},
		{"waiting to in_progress", entities.RepairStatusWaiting, entities.RepairStatusInProgress, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldCreateInvoice(tc.old, tc.new); got != tc.want {
				t.Fatalf("ShouldCreateInvoice(%s, %s) = %v, want %v", tc.old, tc.new, got, tc.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from entities.RepairStatus
		to   entities.RepairStatus
		want bool
	}{
		{entities.RepairStatusWaiting, entities.RepairStatusInProgress, true},
		{entities.RepairStatusWaiting, entities.RepairStatusCancelled, true},
		{entities.RepairStatusWaiting, entities.RepairStatusDelivered, false},
		{entities.RepairStatusInProgress, entities.RepairStatusCompleted, true},
		{entities.RepairStatusCompleted, entities.RepairStatusDelivered, true},
		{entities.RepairStatusDelivered, entities.RepairStatusCancelled, false},
		{entities.RepairStatusCancelled, entities.RepairStatusWaiting, false},
		{entities.RepairStatus("bogus"), entities.RepairStatusWaiting, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
