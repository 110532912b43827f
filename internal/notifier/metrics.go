package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for the polling loop, served on the notifier's
// metrics listener.
var (
	metricCycles = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "matchfeed",
		Subsystem: "notifier",
		Name:      "cycles_total",
		Help:      "Completed polling cycles",
	})
	metricChecked = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "matchfeed",
		Subsystem: "notifier",
		Name:      "games_checked_total",
		Help:      "Highlight checks performed against the feed",
	})
	metricNotified = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "matchfeed",
		Subsystem: "notifier",
		Name:      "notifications_sent_total",
		Help:      "Highlight notifications dispatched",
	})
	metricResolved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "matchfeed",
		Subsystem: "notifier",
		Name:      "games_resolved_total",
		Help:      "Games transitioned to the terminal resolved state",
	})
	metricErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "matchfeed",
		Subsystem: "notifier",
		Name:      "cycle_errors_total",
		Help:      "Per-game errors that left a game pending",
	})
)
