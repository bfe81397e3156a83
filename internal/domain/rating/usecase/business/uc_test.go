package business

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/entities"
	ratingerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/errors"
)

// mockRatingRepository is a mock implementation of deps.RatingRepository
type mockRatingRepository struct {
	createFunc func(ctx context.Context, raterTgID int64, rating *entities.Rating) error
	calls      int
}

func (m *mockRatingRepository) Create(ctx context.Context, raterTgID int64, rating *entities.Rating) error {
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(ctx, raterTgID, rating)
	}
	return nil
}

// mockRatingEvents counts published rating events
type mockRatingEvents struct {
	published int
}

func (m *mockRatingEvents) RatingCreated(ctx context.Context, movieID uint, userID int64, kind string, stars int) error {
	m.published++
	return nil
}

func TestRate_Like(t *testing.T) {
	repo := &mockRatingRepository{}
	events := &mockRatingEvents{}
	uc := NewUseCase(repo, events, zerolog.Nop())

	rating, err := uc.Rate(context.Background(), 42, 7, entities.KindLike, 0)
	require.NoError(t, err)
	require.Equal(t, entities.KindLike, rating.Kind)
	require.Equal(t, 0, rating.Stars)
	require.Equal(t, 1, events.published)
}

func TestRate_StarsOutsideRangeRejected(t *testing.T) {
	repo := &mockRatingRepository{}
	uc := NewUseCase(repo, &mockRatingEvents{}, zerolog.Nop())

	for _, stars := range []int{0, -1, 6, 100} {
		_, err := uc.Rate(context.Background(), 42, 7, entities.KindStars, stars)
		require.ErrorIs(t, err, ratingerrors.ErrInvalidStars, "stars=%d", stars)
	}
	require.Zero(t, repo.calls, "invalid ratings must never reach the repository")
}

func TestRate_StarsIgnoredForLikeDislike(t *testing.T) {
	var captured *entities.Rating
	repo := &mockRatingRepository{
		createFunc: func(ctx context.Context, raterTgID int64, rating *entities.Rating) error {
			captured = rating
			return nil
		},
	}
	uc := NewUseCase(repo, &mockRatingEvents{}, zerolog.Nop())

	// A stray stars value on a thumb rating is dropped, not stored
	_, err := uc.Rate(context.Background(), 42, 7, entities.KindDislike, 5)
	require.NoError(t, err)
	require.Equal(t, 0, captured.Stars)
}

func TestRate_DuplicatePairRejected(t *testing.T) {
	repo := &mockRatingRepository{
		createFunc: func(ctx context.Context, raterTgID int64, rating *entities.Rating) error {
			return ratingerrors.ErrAlreadyRated
		},
	}
	events := &mockRatingEvents{}
	uc := NewUseCase(repo, events, zerolog.Nop())

	_, err := uc.Rate(context.Background(), 42, 7, entities.KindLike, 0)
	require.ErrorIs(t, err, ratingerrors.ErrAlreadyRated)
	require.Zero(t, events.published)
}

func TestRate_ValidStars(t *testing.T) {
	var captured *entities.Rating
	repo := &mockRatingRepository{
		createFunc: func(ctx context.Context, raterTgID int64, rating *entities.Rating) error {
			captured = rating
			return nil
		},
	}
	uc := NewUseCase(repo, &mockRatingEvents{}, zerolog.Nop())

	_, err := uc.Rate(context.Background(), 42, 7, entities.KindStars, 5)
	require.NoError(t, err)
	require.Equal(t, entities.KindStars, captured.Kind)
	require.Equal(t, 5, captured.Stars)
	require.Equal(t, uint(7), captured.MovieID)
}
