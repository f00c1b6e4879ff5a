package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	staleMergesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "duosync",
			Subsystem: "session",
			Name:      "stale_merges_total",
			Help:      "Remote snapshots of the own document discarded because they were not newer than the mirror.",
		},
	)

	partialMirrorFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "duosync",
			Subsystem: "session",
			Name:      "partial_mirror_failures_total",
			Help:      "Mirrored-field mutations committed locally whose partner-side write failed.",
		},
	)

	remoteWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "duosync",
			Subsystem: "session",
			Name:      "remote_writes_total",
			Help:      "Remote document writes by kind and result.",
		},
		[]string{"kind", "result"},
	)

	messagesEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "duosync",
			Subsystem: "session",
			Name:      "messages_evicted_total",
			Help:      "Messages dropped by the retention sweep.",
		},
	)
)
