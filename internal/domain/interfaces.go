package domain

import (
	"context"
	"errors"
	"time"
)

// ErrUserNotFound возвращается, когда апстрим не знает такого FID.
var ErrUserNotFound = errors.New("пользователь не найден")

// ProfileProvider возвращает профиль пользователя по FID.
type ProfileProvider interface {
	GetProfile(ctx context.Context, fid int64) (UserProfile, error)
}

// CastProvider возвращает последние касты пользователя без реплаев.
type CastProvider interface {
	ListCasts(ctx context.Context, fid int64, limit int) ([]Cast, error)
}

// StatsService строит сводку «год в обзоре» для пользователя.
type StatsService interface {
	BuildForFID(ctx context.Context, fid int64) (UserStats, error)
}

// Cache используется для простых TTL-хранилищ.
type Cache interface {
	Set(key string, value []byte, ttl time.Duration) error
	Get(key string) ([]byte, error)
}
