// Package metrics exposes Prometheus counters for the bot, the gateways and
// the ACS task pipeline.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "portal"

	ResultSuccess = "success"
	ResultError   = "error"
	ResultIgnored = "ignored"
)

var (
	registerOnce sync.Once

	botCommands     *prometheus.CounterVec
	gatewaySends    *prometheus.CounterVec
	gatewayLatency  *prometheus.HistogramVec
	acsTasks        *prometheus.CounterVec
	webhookRequests *prometheus.CounterVec
)

func register() {
	botCommands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "commands_total",
			Help:      "WhatsApp bot commands handled, by command and outcome.",
		},
		[]string{"command", "result"},
	)

	gatewaySends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "sends_total",
			Help:      "Outbound WhatsApp messages, by gateway and result.",
		},
		[]string{"gateway", "result"},
	)

	gatewayLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "send_duration_seconds",
			Help:      "Outbound WhatsApp send latency.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"gateway"},
	)

	acsTasks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "acs",
			Name:      "tasks_total",
			Help:      "Tasks pushed to the ACS, by task name and result.",
		},
		[]string{"task", "result"},
	)

	webhookRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "requests_total",
			Help:      "Inbound gateway webhooks, by gateway and outcome.",
		},
		[]string{"gateway", "result"},
	)

	prometheus.MustRegister(botCommands, gatewaySends, gatewayLatency, acsTasks, webhookRequests)
}

// RecordBotCommand counts one dispatched command.
func RecordBotCommand(command, result string) {
	registerOnce.Do(register)
	botCommands.WithLabelValues(command, result).Inc()
}

// RecordGatewaySend counts one outbound message and its latency.
func RecordGatewaySend(gateway string, err error, elapsed time.Duration) {
	registerOnce.Do(register)
	gatewaySends.WithLabelValues(gateway, resultOf(err)).Inc()
	gatewayLatency.WithLabelValues(gateway).Observe(elapsed.Seconds())
}

// RecordACSTask counts one pushed task.
func RecordACSTask(task string, err error) {
	registerOnce.Do(register)
	acsTasks.WithLabelValues(task, resultOf(err)).Inc()
}

// RecordWebhook counts one inbound webhook.
func RecordWebhook(gateway, result string) {
	registerOnce.Do(register)
	webhookRequests.WithLabelValues(gateway, result).Inc()
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}

	return ResultSuccess
}
