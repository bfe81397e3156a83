package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	catalogentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	ratingentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/entities"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/deps"
	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.StatsRepository {
	return &Repository{db: db}
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userentities.User{}).Count(&count).Error
	return count, err
}

func (r *Repository) CountUsersJoinedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userentities.User{}).
		Where("joined_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountUsersActiveSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userentities.User{}).
		Where("last_active >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *Repository) CountMovies(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalogentities.Movie{}).Count(&count).Error
	return count, err
}

func (r *Repository) CountMoviesCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&catalogentities.Movie{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *Repository) SumViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&catalogentities.Movie{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

func (r *Repository) CountRatings(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ratingentities.Rating{}).Count(&count).Error
	return count, err
}
