package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"fc-wrapped/internal/adapters/neynar"
	"fc-wrapped/internal/domain"
	"fc-wrapped/internal/infra/cache"
	"fc-wrapped/internal/infra/config"
	httpinfra "fc-wrapped/internal/infra/http"
	loginfra "fc-wrapped/internal/infra/log"
	"fc-wrapped/internal/infra/metrics"
	"fc-wrapped/internal/usecase/narrative"
	statsusecase "fc-wrapped/internal/usecase/stats"
)

func main() {
	cfg := config.Load()
	logger := loginfra.NewLogger(cfg.AppEnv, "api")

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := neynar.NewClient(cfg.Neynar.APIKey, cfg.Neynar.BaseURL, cfg.Neynar.Timeout)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		client = client.WithCache(cache.NewRedis(rdb), cfg.CacheTTL)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("api: кэш ответов апстрима включён")
	}

	service := statsusecase.NewService(client, client, cfg.Limits.CastsLimit, logger.With().Str("component", "stats").Logger())

	srv := httpinfra.NewServer(logger.With().Str("component", "http").Logger())
	srv.Router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	srv.Router.Get("/user-stats", handleUserStats(service))
	srv.Router.Get("/user-stats/dialogues", handleDialogues(service))

	metrics.StartServer(ctx, logger.With().Str("component", "metrics").Logger(), fmt.Sprintf(":%d", cfg.MetricsPort))

	go func() {
		log.Info().Msg("api: старт")
		if err := srv.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("api: сервер остановлен")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("api: остановка")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// handleUserStats отдаёт сводку пользователя по fid.
func handleUserStats(service domain.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fid, ok := parseFID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "FID is required")
			return
		}
		result, err := buildStats(r.Context(), service, fid, w)
		if err != nil {
			return
		}
		writeJSON(w, result)
	}
}

// handleDialogues отдаёт реплики всех слотов повествования по fid.
func handleDialogues(service domain.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fid, ok := parseFID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "FID is required")
			return
		}
		result, err := buildStats(r.Context(), service, fid, w)
		if err != nil {
			return
		}
		writeJSON(w, map[string]any{
			"fid":       result.FID,
			"dialogues": narrative.Dialogues(&result),
		})
	}
}

// buildStats строит сводку и сам пишет ответ об ошибке, если она случилась.
func buildStats(ctx context.Context, service domain.StatsService, fid int64, w http.ResponseWriter) (domain.UserStats, error) {
	result, err := service.BuildForFID(ctx, fid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return domain.UserStats{}, err
		}
		log.Error().Err(err).Int64("fid", fid).Msg("api: построение сводки")
		writeError(w, http.StatusInternalServerError, "Failed to fetch user stats")
		return domain.UserStats{}, err
	}
	return result, nil
}

func parseFID(r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("fid")
	if raw == "" {
		return 0, false
	}
	fid, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return fid, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": msg})
}
