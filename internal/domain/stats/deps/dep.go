package deps

import (
	"context"
	"time"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/entities"
)

type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountUsersJoinedSince(ctx context.Context, since time.Time) (int64, error)
	CountUsersActiveSince(ctx context.Context, since time.Time) (int64, error)
	CountMovies(ctx context.Context) (int64, error)
	CountMoviesCreatedSince(ctx context.Context, since time.Time) (int64, error)
	SumViews(ctx context.Context) (int64, error)
	CountRatings(ctx context.Context) (int64, error)
}

type StatsUseCase interface {
	Overview(ctx context.Context, period entities.Period) (*entities.Overview, error)
}
