package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
)

// Metrics tracks API statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal  atomic.Int64
	RequestErrors  atomic.Int64
	MovesTotal     atomic.Int64
	EventsStreamed atomic.Int64
	StreamClients  atomic.Int32
	StartTime      time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal  int64     `json:"requests_total"`
	RequestErrors  int64     `json:"request_errors"`
	MovesTotal     int64     `json:"moves_total"`
	EventsStreamed int64     `json:"events_streamed"`
	StreamClients  int32     `json:"stream_clients"`
	StartTime      time.Time `json:"start_time"`
	Uptime         string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:  m.RequestsTotal.Load(),
		RequestErrors:  m.RequestErrors.Load(),
		MovesTotal:     m.MovesTotal.Load(),
		EventsStreamed: m.EventsStreamed.Load(),
		StreamClients:  m.StreamClients.Load(),
		StartTime:      m.StartTime,
		Uptime:         time.Since(m.StartTime).Round(time.Second).String(),
	}
}

// observe counts a finished request
func (m *Metrics) observe(status int, err error) {
	m.RequestsTotal.Add(1)
	if err != nil || status >= http.StatusInternalServerError {
		m.RequestErrors.Add(1)
	}
}

func getMetrics(metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, metrics.GetSnapshot())
	}
}
