package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Источники, из которых было получено расписание
const (
	SourceStore    = "store"
	SourceDefault  = "default"
	SourceFallback = "fallback"
	SourceCache    = "cache"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ScheduleLoadsTotal  *prometheus.CounterVec
	ScheduleSavesTotal  *prometheus.CounterVec
	SlotQueriesTotal    *prometheus.CounterVec
	DBQueriesTotal      *prometheus.CounterVec
	DBQueryDuration     *prometheus.HistogramVec
	DBConnections       *prometheus.GaugeVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ScheduleLoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_loads_total",
			Help:        "Weekly schedule loads by source",
			ConstLabels: labels,
		}, []string{"source"}),

		ScheduleSavesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_saves_total",
			Help:        "Weekly schedule save attempts by outcome",
			ConstLabels: labels,
		}, []string{"status"}),

		SlotQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_queries_total",
			Help:        "Available slot queries by day kind",
			ConstLabels: labels,
		}, []string{"work_day"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: labels,
		}, []string{"operation", "status"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: labels,
		}, []string{"state"}),
	}
}

// ScheduleLoaded учитывает загрузку расписания
func (m *Metrics) ScheduleLoaded(source string) {
	m.ScheduleLoadsTotal.WithLabelValues(source).Inc()
}

// ScheduleSaved учитывает попытку сохранения расписания
func (m *Metrics) ScheduleSaved(status string) {
	m.ScheduleSavesTotal.WithLabelValues(status).Inc()
}

// SlotsQueried учитывает запрос слотов на дату
func (m *Metrics) SlotsQueried(workDay bool) {
	label := "false"
	if workDay {
		label = "true"
	}
	m.SlotQueriesTotal.WithLabelValues(label).Inc()
}

// ObserveHTTP учитывает HTTP запрос
func (m *Metrics) ObserveHTTP(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveDBQuery учитывает запрос к базе данных
func (m *Metrics) ObserveDBQuery(operation, status string, seconds float64) {
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBPoolStats выставляет состояние пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.DBConnections.WithLabelValues("open").Set(float64(open))
	m.DBConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
}

// Nop реализация без регистрации (метрики выключены)
type Nop struct{}

func (Nop) ScheduleLoaded(string) {}
func (Nop) ScheduleSaved(string)  {}
func (Nop) SlotsQueried(bool)     {}
