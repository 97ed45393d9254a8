package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service holds the Prometheus collectors.
type Service struct {
	ProviderRequests *prometheus.CounterVec
	MatchesIngested  prometheus.Counter
	MatchesDropped   *prometheus.CounterVec
	CacheHits        *prometheus.CounterVec
	CacheMisses      *prometheus.CounterVec
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lolookup_provider_requests_total",
			Help: "Requests sent to the Riot API by endpoint and status code.",
		}, []string{"endpoint", "status"}),
		MatchesIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lolookup_matches_ingested_total",
			Help: "Matches fetched from the Riot API and stored.",
		}),
		MatchesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lolookup_matches_dropped_total",
			Help: "Matches dropped from a batch because fetching or storing failed.",
		}, []string{"reason"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lolookup_cache_hits_total",
			Help: "Cache hits by cache name.",
		}, []string{"cache"}),
		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lolookup_cache_misses_total",
			Help: "Cache misses by cache name.",
		}, []string{"cache"}),
	}

	reg.MustRegister(
		s.ProviderRequests,
		s.MatchesIngested,
		s.MatchesDropped,
		s.CacheHits,
		s.CacheMisses,
	)

	return s
}

func (s *Service) IncProviderRequest(endpoint string, status int) {
	s.ProviderRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

func (s *Service) IncMatchesIngested() {
	s.MatchesIngested.Inc()
}

func (s *Service) IncMatchesDropped(reason string) {
	s.MatchesDropped.WithLabelValues(reason).Inc()
}

func (s *Service) IncCacheHit(cache string) {
	s.CacheHits.WithLabelValues(cache).Inc()
}

func (s *Service) IncCacheMiss(cache string) {
	s.CacheMisses.WithLabelValues(cache).Inc()
}
