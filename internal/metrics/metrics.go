// Package metrics defines and registers all custom Prometheus metrics for
// the lucamusic platform services. It is the single source of truth for
// metric names, labels, and help strings. Metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lucamusic"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "disabled", "invalid_input", "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts bearer tokens minted by successful logins.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// AuthzDecisionsTotal counts access-control gate decisions.
// Label:
//   - result: "granted", "forbidden", "unauthenticated", "unknown_subject"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of access-control decisions, by outcome.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// EventsCreatedTotal counts catalog entries created.
// Label:
//   - music_style: the style tag of the created event
var EventsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "Total number of events created, by music style.",
	},
	[]string{"music_style"},
)

// StyleLookupsTotal counts music-style lookups by cache outcome.
// Label:
//   - result: "hit" (served from cache) or "miss" (repository read)
var StyleLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "style_lookups_total",
		Help:      "Total number of music-style lookups, labelled by cache result (hit/miss).",
	},
	[]string{"result"},
)
