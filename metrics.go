package jusmatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	turnsJournaledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jusmatch_client",
			Name:      "turns_journaled_total",
			Help:      "Transcript turns accepted into the journal executor.",
		},
	)

	turnJournalFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jusmatch_client",
			Name:      "turn_journal_failures_total",
			Help:      "Journal jobs that exhausted retries or failed fast.",
		},
	)
)
