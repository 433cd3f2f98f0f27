package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yatube-lab/backend/internal/common"
)

// NewHandler serves the runtime collectors together with the request and
// feed cache metrics of the service. Every call uses a fresh registry.
func NewHandler() http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		common.PromCounters[common.HTTPRequestTotal],
		common.PromHistograms[common.HTTPRequestDurationSeconds],
		common.PromCounters[common.FeedCacheLookupTotal],
	)

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
