package xp

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockxp github.com/duskmux/wod20/internal/services/xp TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
