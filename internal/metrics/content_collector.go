package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"boxpro/internal/backend"
)

var (
	backendConnectedDesc  = prometheus.NewDesc("boxpro_backend_connected", "Backend connection status (1=connected,0=disconnected)", nil, nil)
	lastFetchDesc         = prometheus.NewDesc("boxpro_content_last_fetch_timestamp_seconds", "Timestamp of last successful content count fetch", nil, nil)
	lastScrapeSuccessDesc = prometheus.NewDesc("boxpro_content_exporter_last_scrape_success", "Whether the last scrape succeeded (1) or failed (0)", nil, nil)
	photosTotalDesc       = prometheus.NewDesc("boxpro_photos_total", "Total photos grouped by placement", []string{"placement"}, nil)
	projectsTotalDesc     = prometheus.NewDesc("boxpro_projects_total", "Total projects in the catalog", nil, nil)
	cacheEntriesDesc      = prometheus.NewDesc("boxpro_content_cache_entries", "Entries held in the read cache", nil, nil)
)

// cacheSized is implemented by clients that keep a read cache.
type cacheSized interface {
	CacheLen() int
}

type contentCollector struct {
	client backend.Client
	now    func() int64
}

// NewContentCollector returns a Prometheus collector exposing catalog sizes and backend status.
func NewContentCollector(client backend.Client) prometheus.Collector {
	return &contentCollector{client: client, now: func() int64 { return time.Now().Unix() }}
}

func (collector *contentCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- backendConnectedDesc
	ch <- lastFetchDesc
	ch <- lastScrapeSuccessDesc
	ch <- photosTotalDesc
	ch <- projectsTotalDesc
	ch <- cacheEntriesDesc
}

func (collector *contentCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	connected := 1.0
	if err := collector.client.CheckConnection(ctx); err != nil {
		connected = 0.0
	}
	ch <- prometheus.MustNewConstMetric(backendConnectedDesc, prometheus.GaugeValue, connected)

	if sized, ok := collector.client.(cacheSized); ok {
		ch <- prometheus.MustNewConstMetric(cacheEntriesDesc, prometheus.GaugeValue, float64(sized.CacheLen()))
	}

	projects, err := collector.client.Count(ctx, "projects", nil)
	if err != nil {
		ch <- prometheus.MustNewConstMetric(lastScrapeSuccessDesc, prometheus.GaugeValue, 0)
		return
	}
	ch <- prometheus.MustNewConstMetric(projectsTotalDesc, prometheus.GaugeValue, float64(projects))

	for _, placement := range []string{"hero", "gallery", "section_offers", "project"} {
		count, err := collector.client.Count(ctx, "photos", map[string]string{"placement": placement})
		if err != nil {
			ch <- prometheus.MustNewConstMetric(lastScrapeSuccessDesc, prometheus.GaugeValue, 0)
			return
		}
		ch <- prometheus.MustNewConstMetric(photosTotalDesc, prometheus.GaugeValue, float64(count), placement)
	}

	ch <- prometheus.MustNewConstMetric(lastFetchDesc, prometheus.GaugeValue, float64(collector.now()))
	ch <- prometheus.MustNewConstMetric(lastScrapeSuccessDesc, prometheus.GaugeValue, 1)
}
