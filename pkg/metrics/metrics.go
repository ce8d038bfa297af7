package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	BookingsCreated   *prometheus.CounterVec
	BookingRejections *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec
	SweeperCompleted  *prometheus.CounterVec
	SweeperRuns       *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation", "status"}),
		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Number of bookings created",
		}, []string{"service"}),
		BookingRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_rejections_total",
			Help: "Number of rejected booking operations by rejection kind",
		}, []string{"service", "operation", "kind"}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_status_transitions_total",
			Help: "Applied booking status transitions",
		}, []string{"service", "event", "to"}),
		SweeperCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sweeper_completed_bookings_total",
			Help: "Bookings completed by the auto-completion sweeper",
		}, []string{"service"}),
		SweeperRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sweeper_runs_total",
			Help: "Sweeper runs by result",
		}, []string{"service", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBConnections,
		m.BookingsCreated,
		m.BookingRejections,
		m.StatusTransitions,
		m.SweeperCompleted,
		m.SweeperRuns,
	)

	return m
}

// ServiceName имя сервиса в лейблах
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// ObserveHTTPRequest фиксирует HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(seconds)
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation, status).Observe(seconds)
}

// SetDBConnections выставляет состояние пула соединений
func (m *Metrics) SetDBConnections(state string, value float64) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues(m.serviceName, state).Set(value)
}

// IncBookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(m.serviceName).Inc()
}

// IncRejection увеличивает счетчик отказов
func (m *Metrics) IncRejection(operation, kind string) {
	if m == nil {
		return
	}
	m.BookingRejections.WithLabelValues(m.serviceName, operation, kind).Inc()
}

// IncTransition увеличивает счетчик примененных переходов статуса
func (m *Metrics) IncTransition(event, to string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(m.serviceName, event, to).Inc()
}

// AddSweeperCompleted добавляет количество завершенных sweeper'ом бронирований
func (m *Metrics) AddSweeperCompleted(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SweeperCompleted.WithLabelValues(m.serviceName).Add(float64(n))
}

// IncSweeperRun фиксирует запуск sweeper'а
func (m *Metrics) IncSweeperRun(result string) {
	if m == nil {
		return
	}
	m.SweeperRuns.WithLabelValues(m.serviceName, result).Inc()
}
