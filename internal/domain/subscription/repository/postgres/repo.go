package postgres

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/entities"
	suberrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.ChannelRepository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, channel *entities.Channel) error {
	result := r.db.WithContext(ctx).Create(channel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return suberrors.ErrChannelAlreadyExists
		}
		return suberrors.ErrDatabaseOperation
	}
	return nil
}

// Delete matches by numeric platform id or by username (with or without a
// leading @), the two forms admins paste in.
func (r *Repository) Delete(ctx context.Context, ref string) (*entities.Channel, error) {
	var channel entities.Channel

	query := r.db.WithContext(ctx)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		query = query.Where("channel_id = ?", id)
	} else {
		username := ref
		if len(username) > 0 && username[0] == '@' {
			username = username[1:]
		}
		query = query.Where("username = ?", username)
	}

	err := query.First(&channel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, suberrors.ErrChannelNotFound
	}
	if err != nil {
		return nil, suberrors.ErrDatabaseOperation
	}

	if err := r.db.WithContext(ctx).Delete(&channel).Error; err != nil {
		return nil, suberrors.ErrDatabaseOperation
	}

	return &channel, nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Channel, error) {
	var channels []entities.Channel
	result := r.db.WithContext(ctx).Order("added_at").Find(&channels)
	if result.Error != nil {
		return nil, suberrors.ErrDatabaseOperation
	}
	return channels, nil
}

func (r *Repository) ListActiveMandatory(ctx context.Context) ([]entities.Channel, error) {
	var channels []entities.Channel
	result := r.db.WithContext(ctx).
		Where("channel_type = ? AND is_active = ?", entities.ChannelTypeMandatory, true).
		Order("added_at").
		Find(&channels)

	if result.Error != nil {
		return nil, suberrors.ErrDatabaseOperation
	}
	return channels, nil
}
