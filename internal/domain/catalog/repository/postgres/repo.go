package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	catalogerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/errors"
	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.MovieRepository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, movie *entities.Movie) error {
	result := r.db.WithContext(ctx).Create(movie)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return catalogerrors.ErrCodeTaken
		}
		return catalogerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&entities.Movie{}).
		Where("code = ?", code).
		Count(&count)

	if result.Error != nil {
		return false, catalogerrors.ErrDatabaseOperation
	}
	return count > 0, nil
}

func (r *Repository) FindActiveByCode(ctx context.Context, code string) (*entities.Movie, error) {
	var movie entities.Movie
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&movie).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalogerrors.ErrMovieNotFound
	}
	if err != nil {
		return nil, catalogerrors.ErrDatabaseOperation
	}
	return &movie, nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Movie, error) {
	var movie entities.Movie
	err := r.db.WithContext(ctx).First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalogerrors.ErrMovieNotFound
	}
	if err != nil {
		return nil, catalogerrors.ErrDatabaseOperation
	}
	return &movie, nil
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Movie{}, id)
	if result.Error != nil {
		return catalogerrors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return catalogerrors.ErrMovieNotFound
	}
	return nil
}

func (r *Repository) RecordView(ctx context.Context, id uint, viewerTgID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Movie{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return catalogerrors.ErrMovieNotFound
		}

		return tx.Model(&userentities.User{}).
			Where("tg_id = ?", viewerTgID).
			UpdateColumn("watched_movies", gorm.Expr("watched_movies + 1")).Error
	})

	if err != nil {
		if errors.Is(err, catalogerrors.ErrMovieNotFound) {
			return err
		}
		return catalogerrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) ListActive(ctx context.Context, offset, limit int) ([]entities.Movie, int64, error) {
	var total int64
	result := r.db.WithContext(ctx).
		Model(&entities.Movie{}).
		Where("is_active = ?", true).
		Count(&total)
	if result.Error != nil {
		return nil, 0, catalogerrors.ErrDatabaseOperation
	}

	var movies []entities.Movie
	result = r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&movies)
	if result.Error != nil {
		return nil, 0, catalogerrors.ErrDatabaseOperation
	}

	return movies, total, nil
}

// TopByViews orders by view count, ties broken by newest creation first so
// the ranking is deterministic.
func (r *Repository) TopByViews(ctx context.Context, limit int) ([]entities.Movie, error) {
	var movies []entities.Movie
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("views DESC, created_at DESC").
		Limit(limit).
		Find(&movies)

	if result.Error != nil {
		return nil, catalogerrors.ErrDatabaseOperation
	}
	return movies, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&entities.Movie{}).Count(&count)
	if result.Error != nil {
		return 0, catalogerrors.ErrDatabaseOperation
	}
	return count, nil
}
