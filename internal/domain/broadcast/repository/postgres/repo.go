package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/entities"
	broadcasterrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.BroadcastRepository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, broadcast *entities.Broadcast) error {
	if err := r.db.WithContext(ctx).Create(broadcast).Error; err != nil {
		return broadcasterrors.ErrDatabaseOperation
	}
	return nil
}

func (r *Repository) Complete(ctx context.Context, id uint, result entities.Result) error {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).
		Model(&entities.Broadcast{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sent_count":   result.Sent,
			"failed_count": result.Failed,
			"total_count":  result.Total,
			"completed_at": &now,
		}).Error

	if err != nil {
		return broadcasterrors.ErrDatabaseOperation
	}
	return nil
}
