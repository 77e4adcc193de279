package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Registration metrics
	RegistrationsTotal *prometheus.CounterVec
	LoginsTotal        *prometheus.CounterVec
	ActiveSessions     prometheus.Gauge

	// Ward metrics
	RoomsOccupied      prometheus.Gauge
	RoomAssignments    *prometheus.CounterVec
	SurgeriesScheduled prometheus.Counter
	SurgeriesCompleted prometheus.Counter
	PatientCheckEvents *prometheus.CounterVec
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RegistrationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Total number of user registrations by role",
		}, []string{"role"}),
		LoginsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Total number of login attempts by outcome",
		}, []string{"status"}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Current number of active user sessions",
		}),
		RoomsOccupied: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms_occupied",
			Help:      "Current number of occupied rooms",
		}),
		RoomAssignments: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "room_assignments_total",
			Help:      "Total number of room assignment operations by outcome",
		}, []string{"operation", "status"}),
		SurgeriesScheduled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "surgeries_scheduled_total",
			Help:      "Total number of surgeries scheduled",
		}),
		SurgeriesCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "surgeries_completed_total",
			Help:      "Total number of surgeries marked completed",
		}),
		PatientCheckEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patient_check_events_total",
			Help:      "Total number of patient check-in/check-out events",
		}, []string{"event"}),
	}
}
