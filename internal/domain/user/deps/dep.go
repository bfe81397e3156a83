package deps

import (
	"context"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

type UserRepository interface {
	GetOrCreate(ctx context.Context, identity entities.Identity) (*entities.User, error)
	GetByTelegramID(ctx context.Context, tgID int64) (*entities.User, error)
	SetBlocked(ctx context.Context, tgID int64, blocked bool) error
	SetAdmin(ctx context.Context, tgID int64, admin bool) error
	ListActiveRecipientIDs(ctx context.Context) ([]int64, error)
	TopByWatched(ctx context.Context, limit int) ([]entities.User, error)
}

type UserUseCase interface {
	// Touch creates the user on first interaction and refreshes identity
	// fields and last-active on every one after that.
	Touch(ctx context.Context, identity entities.Identity) (*entities.User, error)
	GetByTelegramID(ctx context.Context, tgID int64) (*entities.User, error)
	// IsAdmin reports whether the user may perform admin operations:
	// static allowlist unioned with the persisted flag.
	IsAdmin(ctx context.Context, tgID int64) bool
	SetBlocked(ctx context.Context, tgID int64, blocked bool) error
	ListActiveRecipientIDs(ctx context.Context) ([]int64, error)
	TopByWatched(ctx context.Context, limit int) ([]entities.User, error)
}
