package business

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/entities"
)

// mockStatsRepository is a mock implementation of deps.StatsRepository
type mockStatsRepository struct {
	sinceCalls int
}

func (m *mockStatsRepository) CountUsers(ctx context.Context) (int64, error) { return 100, nil }

func (m *mockStatsRepository) CountUsersJoinedSince(ctx context.Context, since time.Time) (int64, error) {
	m.sinceCalls++
	return 5, nil
}

func (m *mockStatsRepository) CountUsersActiveSince(ctx context.Context, since time.Time) (int64, error) {
	m.sinceCalls++
	return 30, nil
}

func (m *mockStatsRepository) CountMovies(ctx context.Context) (int64, error) { return 40, nil }

func (m *mockStatsRepository) CountMoviesCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	m.sinceCalls++
	return 2, nil
}

func (m *mockStatsRepository) SumViews(ctx context.Context) (int64, error) { return 900, nil }

func (m *mockStatsRepository) CountRatings(ctx context.Context) (int64, error) { return 250, nil }

func TestOverview_PeriodWindow(t *testing.T) {
	repo := &mockStatsRepository{}
	uc := NewUseCase(repo, zerolog.Nop())

	ov, err := uc.Overview(context.Background(), entities.PeriodWeekly)
	require.NoError(t, err)
	require.Equal(t, int64(100), ov.TotalUsers)
	require.Equal(t, int64(5), ov.NewUsers)
	require.Equal(t, int64(30), ov.ActiveUsers)
	require.Equal(t, int64(2), ov.NewMovies)
	require.Equal(t, int64(900), ov.TotalViews)
	require.Equal(t, 3, repo.sinceCalls)
}

func TestOverview_TotalSkipsWindowQueries(t *testing.T) {
	repo := &mockStatsRepository{}
	uc := NewUseCase(repo, zerolog.Nop())

	ov, err := uc.Overview(context.Background(), entities.PeriodTotal)
	require.NoError(t, err)
	require.Equal(t, ov.TotalUsers, ov.NewUsers)
	require.Equal(t, ov.TotalMovies, ov.NewMovies)
	require.Zero(t, repo.sinceCalls)
}

func TestPeriodCutoff(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	require.Equal(t, now.AddDate(0, 0, -1), entities.PeriodDaily.Cutoff(now))
	require.Equal(t, now.AddDate(0, 0, -7), entities.PeriodWeekly.Cutoff(now))
	require.Equal(t, now.AddDate(0, 0, -30), entities.PeriodMonthly.Cutoff(now))
	require.True(t, entities.PeriodTotal.Cutoff(now).IsZero())
}
