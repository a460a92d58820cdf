package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	StatsBuildSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "stats_build_seconds",
		Help:    "Время построения сводки пользователя",
		Buckets: prometheus.DefBuckets,
	})

	StatsRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stats_requests_total",
		Help: "Общее количество запросов на построение сводки",
	})

	StatsRequestsByFID = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stats_requests_by_fid_total",
		Help: "Количество запросов на построение сводки по пользователям",
	}, []string{"fid"})

	StatsBuildErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stats_build_errors_total",
		Help: "Ошибки при построении сводки",
	})

	UpstreamCacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_cache_hits_total",
		Help: "Попадания в кэш ответов апстрима",
	}, []string{"operation"})

	NetworkRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "network_request_duration_seconds",
		Help:    "Длительность сетевых запросов",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30, 60},
	}, []string{"component", "operation", "target", "status"})

	NetworkRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "network_request_total",
		Help: "Количество сетевых запросов",
	}, []string{"component", "operation", "target", "status"})
)

// MustRegister регистрирует метрики.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		StatsBuildSeconds,
		StatsRequestsTotal,
		StatsRequestsByFID,
		StatsBuildErrors,
		UpstreamCacheHits,
		NetworkRequestDuration,
		NetworkRequestTotal,
	)
}

// StartServer запускает HTTP сервер с эндпоинтом /metrics.
func StartServer(ctx context.Context, logger zerolog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	shutdownCtx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-ctx.Done():
		case <-shutdownCtx.Done():
		}
		shutdownTimeout, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer timeoutCancel()
		if err := srv.Shutdown(shutdownTimeout); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: graceful shutdown failed")
		}
	}()

	go func() {
		logger.Info().Str("addr", addr).Msg("metrics: server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: server stopped")
		}
		cancel()
	}()
}

// ObserveNetworkRequest записывает длительность и статус сетевого запроса.
func ObserveNetworkRequest(component, operation, target string, start time.Time, err error) {
	if component == "" {
		component = "unknown"
	}
	if operation == "" {
		operation = "unknown"
	}
	if target == "" {
		target = "unknown"
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	duration := time.Since(start).Seconds()
	NetworkRequestDuration.WithLabelValues(component, operation, target, status).Observe(duration)
	NetworkRequestTotal.WithLabelValues(component, operation, target, status).Inc()
}

// IncStatsOverall увеличивает общий счётчик запросов на сводку.
func IncStatsOverall() {
	StatsRequestsTotal.Inc()
}

// IncStatsForFID увеличивает счётчик запросов на сводку для пользователя.
func IncStatsForFID(fid int64) {
	StatsRequestsByFID.WithLabelValues(strconv.FormatInt(fid, 10)).Inc()
}
