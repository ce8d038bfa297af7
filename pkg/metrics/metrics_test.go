package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("place-booking", prometheus.NewRegistry())

	m.IncBookingCreated()
	m.IncBookingCreated()
	m.IncRejection("create_booking", "capacity_exceeded")
	m.AddSweeperCompleted(3)
	m.AddSweeperCompleted(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("place-booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingRejections.WithLabelValues("place-booking", "create_booking", "capacity_exceeded")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SweeperCompleted.WithLabelValues("place-booking")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated()
		m.IncRejection("op", "kind")
		m.ObserveHTTPRequest("GET", "/", "200", 0.1)
		m.ObserveDBQuery("query", "ok", 0.1)
		m.SetDBConnections("open", 1)
		m.IncTransition("confirm", "confirmed")
		m.AddSweeperCompleted(1)
		m.IncSweeperRun("ok")
	})
	assert.Equal(t, "", m.ServiceName())
}
