package business

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
	usererrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/errors"
)

type UseCase struct {
	repo     deps.UserRepository
	adminIDs map[int64]struct{}
	logger   zerolog.Logger
}

func NewUseCase(repo deps.UserRepository, adminIDs []int64, logger zerolog.Logger) *UseCase {
	allow := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		allow[id] = struct{}{}
	}
	return &UseCase{
		repo:     repo,
		adminIDs: allow,
		logger:   logger,
	}
}

func (u *UseCase) Touch(ctx context.Context, identity entities.Identity) (*entities.User, error) {
	user, err := u.repo.GetOrCreate(ctx, identity)
	if err != nil {
		u.logger.Error().Err(err).Int64("tg_id", identity.TgID).Msg("failed to get or create user")
		return nil, err
	}
	return user, nil
}

func (u *UseCase) GetByTelegramID(ctx context.Context, tgID int64) (*entities.User, error) {
	return u.repo.GetByTelegramID(ctx, tgID)
}

// IsAdmin checks the configured allowlist first, then the persisted flag.
// Errors from the store count as not-admin.
func (u *UseCase) IsAdmin(ctx context.Context, tgID int64) bool {
	if _, ok := u.adminIDs[tgID]; ok {
		return true
	}

	user, err := u.repo.GetByTelegramID(ctx, tgID)
	if err != nil {
		if !errors.Is(err, usererrors.ErrUserNotFound) {
			u.logger.Warn().Err(err).Int64("tg_id", tgID).Msg("admin check failed, denying")
		}
		return false
	}
	return user.IsAdmin
}

func (u *UseCase) SetBlocked(ctx context.Context, tgID int64, blocked bool) error {
	if err := u.repo.SetBlocked(ctx, tgID, blocked); err != nil {
		u.logger.Error().Err(err).Int64("tg_id", tgID).Bool("blocked", blocked).Msg("failed to set blocked flag")
		return err
	}

	u.logger.Info().Int64("tg_id", tgID).Bool("blocked", blocked).Msg("user blocked flag updated")
	return nil
}

func (u *UseCase) ListActiveRecipientIDs(ctx context.Context) ([]int64, error) {
	ids, err := u.repo.ListActiveRecipientIDs(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to list broadcast recipients")
		return nil, err
	}
	return ids, nil
}

func (u *UseCase) TopByWatched(ctx context.Context, limit int) ([]entities.User, error) {
	return u.repo.TopByWatched(ctx, limit)
}
