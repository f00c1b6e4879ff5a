package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "duosync",
			Subsystem: "server",
			Name:      "document_updates_total",
			Help:      "Document updates by writer kind and result.",
		},
		[]string{"writer", "result"},
	)

	documentSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "duosync",
			Subsystem: "server",
			Name:      "document_subscribers",
			Help:      "Open document subscription streams.",
		},
	)

	publishFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "duosync",
			Subsystem: "server",
			Name:      "publish_failures_total",
			Help:      "Committed updates whose broker publish failed.",
		},
	)

	photoPresignsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "duosync",
			Subsystem: "server",
			Name:      "photo_presigns_total",
			Help:      "Presigned photo URLs issued by direction.",
		},
		[]string{"direction"},
	)
)
