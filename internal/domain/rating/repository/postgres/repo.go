package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/entities"
	ratingerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/errors"
	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.RatingRepository {
	return &Repository{db: db}
}

// Create runs the whole rating mutation in one transaction so a failure
// partway leaves neither the rating row nor any counter increment behind.
// The unique index on (user_id, movie_id) arbitrates concurrent attempts:
// the loser's insert fails and the transaction rolls back untouched.
func (r *Repository) Create(ctx context.Context, raterTgID int64, rating *entities.Rating) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user userentities.User
		if err := tx.Where("tg_id = ?", raterTgID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ratingerrors.ErrUserNotFound
			}
			return err
		}
		rating.UserID = user.ID

		if err := tx.Create(rating).Error; err != nil {
			return err
		}

		switch rating.Kind {
		case entities.KindLike:
			if err := tx.Model(&catalogentities.Movie{}).
				Where("id = ?", rating.MovieID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
				return err
			}
		case entities.KindDislike:
			if err := tx.Model(&catalogentities.Movie{}).
				Where("id = ?", rating.MovieID).
				UpdateColumn("dislikes", gorm.Expr("dislikes + 1")).Error; err != nil {
				return err
			}
		}

		return tx.Model(&userentities.User{}).
			Where("id = ?", user.ID).
			UpdateColumn("total_ratings", gorm.Expr("total_ratings + 1")).Error
	})

	return translateCreateErr(err)
}

// translateCreateErr maps storage failures to domain sentinels. A foreign
// key violation means the movie was deleted between delivery and rating.
func translateCreateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ratingerrors.ErrAlreadyRated
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ratingerrors.ErrMovieNotFound
	case errors.Is(err, ratingerrors.ErrUserNotFound):
		return err
	default:
		return ratingerrors.ErrDatabaseOperation
	}
}
