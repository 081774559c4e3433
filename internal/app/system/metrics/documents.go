package metrics

import (
	"context"
	"time"

	metricsstore "github.com/dalemusser/pokerhub/internal/app/store/metrics"
	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DocumentCollector exports user and session totals, counted at scrape
// time.
type DocumentCollector struct {
	conn    dbconn.Connector
	timeout time.Duration
	log     *zap.Logger

	users       *prometheus.Desc
	activeUsers *prometheus.Desc
	sessions    *prometheus.Desc
	sessionsAll *prometheus.Desc
	scrapeOK    *prometheus.Desc
}

// NewDocumentCollector returns a collector counting through conn. Each
// scrape is bounded by timeout.
func NewDocumentCollector(conn dbconn.Connector, timeout time.Duration, logger *zap.Logger) *DocumentCollector {
	return &DocumentCollector{
		conn:    conn,
		timeout: timeout,
		log:     logger,
		users: prometheus.NewDesc("pokerhub_users",
			"Stored users.", nil, nil),
		activeUsers: prometheus.NewDesc("pokerhub_users_active",
			"Stored users with isActive set.", nil, nil),
		sessions: prometheus.NewDesc("pokerhub_sessions",
			"Stored sessions by status.", []string{"status"}, nil),
		sessionsAll: prometheus.NewDesc("pokerhub_sessions_total",
			"Stored sessions across all statuses.", nil, nil),
		scrapeOK: prometheus.NewDesc("pokerhub_documents_scrape_success",
			"1 if the last document count reached the database.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *DocumentCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.users
	ch <- c.activeUsers
	ch <- c.sessions
	ch <- c.sessionsAll
	ch <- c.scrapeOK
}

// Collect implements prometheus.Collector.
func (c *DocumentCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	counts, err := metricsstore.FetchCounts(ctx, c.conn)
	if err != nil {
		c.log.Warn("document counts unavailable", zap.Error(err))
		ch <- prometheus.MustNewConstMetric(c.scrapeOK, prometheus.GaugeValue, 0)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.scrapeOK, prometheus.GaugeValue, 1)
	ch <- prometheus.MustNewConstMetric(c.users, prometheus.GaugeValue, float64(counts.Users))
	ch <- prometheus.MustNewConstMetric(c.activeUsers, prometheus.GaugeValue, float64(counts.ActiveUsers))
	ch <- prometheus.MustNewConstMetric(c.sessionsAll, prometheus.GaugeValue, float64(counts.Sessions))
	for status, n := range counts.SessionsByStatus {
		ch <- prometheus.MustNewConstMetric(c.sessions, prometheus.GaugeValue, float64(n), status)
	}
}
