package business

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/entities"
	ratingerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/errors"
)

type UseCase struct {
	repo   deps.RatingRepository
	events deps.EventPublisher
	logger zerolog.Logger
}

func NewUseCase(repo deps.RatingRepository, events deps.EventPublisher, logger zerolog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// Rate records a user's one-time feedback on a movie. A second attempt on
// the same pair, sequential or concurrent, returns ErrAlreadyRated and
// changes nothing.
func (u *UseCase) Rate(ctx context.Context, raterTgID int64, movieID uint, kind entities.Kind, stars int) (*entities.Rating, error) {
	if kind == entities.KindStars && (stars < 1 || stars > 5) {
		return nil, ratingerrors.ErrInvalidStars
	}
	if kind != entities.KindStars {
		stars = 0
	}

	rating := &entities.Rating{
		MovieID: movieID,
		Kind:    kind,
		Stars:   stars,
	}

	if err := u.repo.Create(ctx, raterTgID, rating); err != nil {
		if errors.Is(err, ratingerrors.ErrAlreadyRated) {
			return nil, err
		}
		u.logger.Error().
			Err(err).
			Int64("tg_id", raterTgID).
			Uint("movie_id", movieID).
			Msg("failed to create rating")
		return nil, err
	}

	u.logger.Info().
		Int64("tg_id", raterTgID).
		Uint("movie_id", movieID).
		Str("kind", string(kind)).
		Msg("rating recorded")

	if err := u.events.RatingCreated(ctx, movieID, raterTgID, string(kind), stars); err != nil {
		u.logger.Warn().Err(err).Uint("movie_id", movieID).Msg("failed to publish rating event")
	}

	return rating, nil
}
