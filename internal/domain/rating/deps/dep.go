package deps

import (
	"context"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/entities"
)

type RatingRepository interface {
	// Create inserts the rating and bumps the movie's like/dislike
	// counter and the user's total-ratings counter in one transaction.
	// A duplicate (user, movie) pair surfaces as ErrAlreadyRated with
	// nothing applied.
	Create(ctx context.Context, raterTgID int64, rating *entities.Rating) error
}

type EventPublisher interface {
	RatingCreated(ctx context.Context, movieID uint, userID int64, kind string, stars int) error
}

type RatingUseCase interface {
	Rate(ctx context.Context, raterTgID int64, movieID uint, kind entities.Kind, stars int) (*entities.Rating, error)
}
