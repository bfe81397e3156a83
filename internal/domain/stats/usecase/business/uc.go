package business

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/entities"
)

type UseCase struct {
	repo   deps.StatsRepository
	logger zerolog.Logger
}

func NewUseCase(repo deps.StatsRepository, logger zerolog.Logger) *UseCase {
	return &UseCase{repo: repo, logger: logger}
}

func (u *UseCase) Overview(ctx context.Context, period entities.Period) (*entities.Overview, error) {
	overview := &entities.Overview{Period: period}

	var err error
	if overview.TotalUsers, err = u.repo.CountUsers(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if overview.TotalMovies, err = u.repo.CountMovies(ctx); err != nil {
		return nil, fmt.Errorf("failed to count movies: %w", err)
	}
	if overview.TotalViews, err = u.repo.SumViews(ctx); err != nil {
		return nil, fmt.Errorf("failed to sum views: %w", err)
	}
	if overview.TotalRatings, err = u.repo.CountRatings(ctx); err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}

	if period == entities.PeriodTotal {
		overview.NewUsers = overview.TotalUsers
		overview.NewMovies = overview.TotalMovies
		overview.ActiveUsers = overview.TotalUsers
		return overview, nil
	}

	cutoff := period.Cutoff(time.Now().UTC())
	if overview.NewUsers, err = u.repo.CountUsersJoinedSince(ctx, cutoff); err != nil {
		return nil, fmt.Errorf("failed to count new users: %w", err)
	}
	if overview.NewMovies, err = u.repo.CountMoviesCreatedSince(ctx, cutoff); err != nil {
		return nil, fmt.Errorf("failed to count new movies: %w", err)
	}
	if overview.ActiveUsers, err = u.repo.CountUsersActiveSince(ctx, cutoff); err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	return overview, nil
}
