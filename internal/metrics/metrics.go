package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_bookings_created_total",
			Help: "Room bookings created",
		},
		[]string{"room_key"},
	)

	RegistrationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_registrations_created_total",
			Help: "Course registrations created",
		},
	)

	RegistrationsDecided = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_registrations_decided_total",
			Help: "Course registrations approved or rejected",
		},
		[]string{"status"},
	)

	GradesAssigned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_grades_assigned_total",
			Help: "Grades assigned or updated",
		},
	)

	CheckIns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_attendance_checkins_total",
			Help: "Attendance check-ins recorded",
		},
	)

	EventAttendances = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_event_attendances_total",
			Help: "Event attendances recorded",
		},
	)
)
