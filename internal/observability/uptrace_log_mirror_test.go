package observability

import (
	"testing"

	otellog "go.opentelemetry.io/otel/log"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http_request", []any{"http_path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if !shouldSkipUptraceLog("http_request", []any{"http_path", "/metrics"}) {
		t.Fatalf("expected metrics scrape log to be skipped")
	}
	if shouldSkipUptraceLog("http_request", []any{"http_path", "/v1/markets"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipUptraceLog("wyscout request", []any{"http_path", "/healthz"}) {
		t.Fatalf("did not expect non-http_request event to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"market_id", "mkt-summer-2026", "attempt", 2, "payload"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "market_id" || attrs[0].Value.AsString() != "mkt-summer-2026" {
		t.Fatalf("unexpected market_id attribute")
	}
	if attrs[1].Key != "attempt" || attrs[1].Value.AsInt64() != 2 {
		t.Fatalf("unexpected attempt attribute")
	}
	if attrs[2].Key != "payload" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute")
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"slot":     "GK",
		"occupied": true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	items := v.AsMap()
	if len(items) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(items))
	}
}

func TestToOTelLogValue_Scalars(t *testing.T) {
	type slotID string

	if v := toOTelLogValue(int32(7), 0); v.Kind() != otellog.KindInt64 || v.AsInt64() != 7 {
		t.Fatalf("unexpected int32 value: %v", v)
	}
	if v := toOTelLogValue(uint64(1<<63), 0); v.Kind() != otellog.KindString {
		t.Fatalf("expected overflowing uint to become a string, got %s", v.Kind())
	}
	if v := toOTelLogValue(slotID("ST"), 0); v.AsString() != "ST" {
		t.Fatalf("unexpected named string value: %v", v)
	}
	if v := toOTelLogValue([]int{1, 2, 3}, 0); v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 3 {
		t.Fatalf("unexpected slice value: %v", v)
	}
	var missing *int
	if v := toOTelLogValue(missing, 0); v.Kind() != otellog.KindEmpty {
		t.Fatalf("expected nil pointer to be empty, got %s", v.Kind())
	}
}
