package payments

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	gw, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload := json.RawMessage(`{"external_reference":"inv-1","payment_method_id":"pix","transaction_amount":100}`)
	id, status, resp, err := gw.CreatePayment(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("expected an approved mock payment, got id=%q status=%q", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(resp, &body); err != nil {
		t.Fatalf("invalid provider response: %v", err)
	}
	if body["external_reference"] != "inv-1" {
		t.Fatalf("expected the invoice linkage echoed back, got %v", body["external_reference"])
	}
	if body["status_detail"] != "accredited" {
		t.Fatalf("unexpected status_detail: %v", body["status_detail"])
	}
}

func TestExtractExternalReference(t *testing.T) {
	if got := extractExternalReference(json.RawMessage(`{"external_reference":"inv-9"}`)); got != "inv-9" {
		t.Fatalf("expected inv-9, got %q", got)
	}
	if got := extractExternalReference(json.RawMessage(`not json`)); got != "" {
		t.Fatalf("expected empty ref for malformed payload, got %q", got)
	}
	if got := extractExternalReference(nil); got != "" {
		t.Fatalf("expected empty ref for empty payload, got %q", got)
	}
}
