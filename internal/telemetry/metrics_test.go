package telemetry

import (
	"strings"
	"testing"
	"time"
)

func TestRenderPrometheus_LabelOrderingStable(t *testing.T) {
	defaultRegistry = newRegistry()

	IncToolCall("hotel_search_rq", "ok")
	IncToolCall("basket_create_rq", "error")
	IncAPICall("/HotelSearchRQ", 200)
	IncAPICall("/HotelSearchRQ", 500)
	IncAPICall("/AuthenticatorRQ", 200)
	IncAuthFailure()

	out := RenderPrometheus()

	basket := strings.Index(out, `bookhub_tool_calls_total{tool="basket_create_rq",status="error"}`)
	hotel := strings.Index(out, `bookhub_tool_calls_total{tool="hotel_search_rq",status="ok"}`)
	if basket < 0 || hotel < 0 {
		t.Fatal("tool call metrics missing from output")
	}
	if basket >= hotel {
		t.Fatal("tool call labels are not rendered in stable lexical order")
	}

	auth := strings.Index(out, `bookhub_api_calls_total{endpoint="/AuthenticatorRQ",status_code="200"}`)
	search200 := strings.Index(out, `bookhub_api_calls_total{endpoint="/HotelSearchRQ",status_code="200"}`)
	search500 := strings.Index(out, `bookhub_api_calls_total{endpoint="/HotelSearchRQ",status_code="500"}`)
	if auth < 0 || search200 < 0 || search500 < 0 {
		t.Fatal("api call metrics missing from output")
	}
	if auth >= search200 || search200 >= search500 {
		t.Fatal("api call labels are not rendered in stable order")
	}

	if !strings.Contains(out, "bookhub_auth_failures_total 1") {
		t.Fatalf("auth failure counter missing or wrong:\n%s", out)
	}
}

func TestObserveToolDuration_BucketAssignment(t *testing.T) {
	defaultRegistry = newRegistry()

	ObserveToolDuration("order_search_rq", 50*time.Millisecond)
	ObserveToolDuration("order_search_rq", 3*time.Second)
	ObserveToolDuration("order_search_rq", 2*time.Minute)

	out := RenderPrometheus()

	for _, want := range []string{
		`bookhub_tool_duration_seconds_bucket{tool="order_search_rq",le="0.1"} 1`,
		`bookhub_tool_duration_seconds_bucket{tool="order_search_rq",le="5"} 1`,
		`bookhub_tool_duration_seconds_bucket{tool="order_search_rq",le="+Inf"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}
