// Package metrics define las métricas Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "battery_supply_chain"

var (
	// LoginAttempts cuenta intentos de login por método (password, google) y resultado (success, failure, cancelled).
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "login_attempts_total",
			Help:      "Intentos de login por método y resultado",
		},
		[]string{"method", "result"},
	)

	// StorageFailures cuenta fallos del almacenamiento de sesión por operación (read, write, delete).
	StorageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "storage_failures_total",
			Help:      "Fallos de lectura/escritura del almacenamiento de sesión",
		},
		[]string{"operation"},
	)

	// GuardDecisions cuenta las decisiones del guard de rutas por rol requerido.
	GuardDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "guard",
			Name:      "decisions_total",
			Help:      "Decisiones del guard de rutas (pending, redirect, render)",
		},
		[]string{"role", "decision"},
	)

	// HTTPRequestDuration latencia de las peticiones HTTP.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "route", "status_code"},
	)
)
