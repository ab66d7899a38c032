// Package metrics defines the custom Prometheus metrics for the kitchen-sales
// API. It is the single source of truth for metric names, labels, and help
// strings; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kitchensales"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts accounts created through /api/add-user.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
)

// SalesCreatedTotal counts recorded sales.
var SalesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_created_total",
		Help:      "Total number of sales recorded.",
	},
)

// QuotesCreatedTotal counts issued quotes.
var QuotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_created_total",
		Help:      "Total number of quotes issued.",
	},
)
