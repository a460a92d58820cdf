package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fc-wrapped/internal/domain"
	"fc-wrapped/internal/infra/metrics"
)

// Service реализует построение сводки «год в обзоре».
type Service struct {
	profiles   domain.ProfileProvider
	casts      domain.CastProvider
	castsLimit int
	log        zerolog.Logger
}

var _ domain.StatsService = (*Service)(nil)

// NewService создаёт сервис сводок.
func NewService(profiles domain.ProfileProvider, casts domain.CastProvider, castsLimit int, logger zerolog.Logger) *Service {
	return &Service{profiles: profiles, casts: casts, castsLimit: castsLimit, log: logger}
}

// BuildForFID загружает профиль и ленту кастов, затем агрегирует их в сводку.
// Сначала профиль, затем касты; частичных результатов не бывает.
func (s *Service) BuildForFID(ctx context.Context, fid int64) (domain.UserStats, error) {
	buildID := uuid.NewString()
	start := time.Now()
	metrics.IncStatsOverall()
	metrics.IncStatsForFID(fid)

	profile, err := s.profiles.GetProfile(ctx, fid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.UserStats{}, err
		}
		metrics.StatsBuildErrors.Inc()
		return domain.UserStats{}, fmt.Errorf("получение профиля: %w", err)
	}

	casts, err := s.casts.ListCasts(ctx, fid, s.castsLimit)
	if err != nil {
		metrics.StatsBuildErrors.Inc()
		return domain.UserStats{}, fmt.Errorf("получение кастов: %w", err)
	}

	result := Aggregate(profile, casts)
	metrics.StatsBuildSeconds.Observe(time.Since(start).Seconds())
	s.log.Debug().
		Str("build_id", buildID).
		Int64("fid", fid).
		Int("casts", len(casts)).
		Str("persona", result.Persona).
		Str("percentile", result.Percentile).
		Msg("сводка построена")
	return result, nil
}
