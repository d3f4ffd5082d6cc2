package otel

import (
	"context"
	"testing"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	tel, err := Setup(context.Background(), Config{ServiceName: "relay"})
	if err != nil {
		t.Fatalf("Setup() unexpected error: %v", err)
	}
	if tel != nil {
		t.Fatalf("Setup() = %v, want nil when disabled", tel)
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on nil telemetry: %v", err)
	}
}

func TestParseHeaders(t *testing.T) {
	got := parseHeaders("x-api-key = abc, x-team=relay,broken")
	if len(got) != 2 || got["x-api-key"] != "abc" || got["x-team"] != "relay" {
		t.Errorf("parseHeaders() = %v", got)
	}
	if len(parseHeaders("")) != 0 {
		t.Error("parseHeaders(\"\") should be empty")
	}
}
