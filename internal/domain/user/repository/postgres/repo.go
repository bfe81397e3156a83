package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
	usererrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.UserRepository {
	return &Repository{db: db}
}

func (r *Repository) GetOrCreate(ctx context.Context, identity entities.Identity) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("tg_id = ?", identity.TgID).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = entities.User{
			TgID:       identity.TgID,
			FirstName:  identity.FirstName,
			Username:   identity.Username,
			LastActive: time.Now().UTC(),
		}
		createErr := r.db.WithContext(ctx).Create(&user).Error
		if createErr == nil {
			return &user, nil
		}
		// Lost a first-interaction race, the row exists now
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			if err := r.db.WithContext(ctx).Where("tg_id = ?", identity.TgID).First(&user).Error; err != nil {
				return nil, usererrors.ErrDatabaseOperation
			}
			return &user, nil
		}
		return nil, usererrors.ErrDatabaseOperation
	}

	if err != nil {
		return nil, usererrors.ErrDatabaseOperation
	}

	updates := map[string]any{
		"first_name":  identity.FirstName,
		"username":    identity.Username,
		"last_active": time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, usererrors.ErrDatabaseOperation
	}

	return &user, nil
}

func (r *Repository) GetByTelegramID(ctx context.Context, tgID int64) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("tg_id = ?", tgID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usererrors.ErrUserNotFound
	}
	if err != nil {
		return nil, usererrors.ErrDatabaseOperation
	}
	return &user, nil
}

func (r *Repository) SetBlocked(ctx context.Context, tgID int64, blocked bool) error {
	return r.setFlag(ctx, tgID, "is_blocked", blocked)
}

func (r *Repository) SetAdmin(ctx context.Context, tgID int64, admin bool) error {
	return r.setFlag(ctx, tgID, "is_admin", admin)
}

func (r *Repository) setFlag(ctx context.Context, tgID int64, column string, value bool) error {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("tg_id = ?", tgID).
		UpdateColumn(column, value)

	if result.Error != nil {
		return usererrors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return usererrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) ListActiveRecipientIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("is_blocked = ?", false).
		Order("id").
		Pluck("tg_id", &ids)

	if result.Error != nil {
		return nil, usererrors.ErrDatabaseOperation
	}
	return ids, nil
}

func (r *Repository) TopByWatched(ctx context.Context, limit int) ([]entities.User, error) {
	var users []entities.User
	result := r.db.WithContext(ctx).
		Where("is_blocked = ?", false).
		Order("watched_movies DESC").
		Limit(limit).
		Find(&users)

	if result.Error != nil {
		return nil, usererrors.ErrDatabaseOperation
	}
	return users, nil
}
