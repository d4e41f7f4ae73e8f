package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InboundEvents counts webhook payloads by endpoint and classified type.
	InboundEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_app_home_inbound_events_total",
			Help: "Total inbound Slack webhook payloads",
		},
		[]string{"endpoint", "type"},
	)

	// SignatureFailures counts rejected requests by verification failure reason.
	SignatureFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_app_home_signature_failures_total",
			Help: "Total requests rejected by signature verification",
		},
		[]string{"reason"},
	)

	// OutboundCalls counts Slack Web API calls by method and outcome.
	OutboundCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_app_home_outbound_calls_total",
			Help: "Total Slack Web API calls",
		},
		[]string{"method", "status"}, // "ok" or "error"
	)
)

// OutboundStatus maps a call result to the status label used by OutboundCalls.
func OutboundStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
