package business

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
	usererrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/errors"
)

// mockUserRepository is a mock implementation of deps.UserRepository
type mockUserRepository struct {
	getOrCreateFunc     func(ctx context.Context, identity entities.Identity) (*entities.User, error)
	getByTelegramIDFunc func(ctx context.Context, tgID int64) (*entities.User, error)
}

func (m *mockUserRepository) GetOrCreate(ctx context.Context, identity entities.Identity) (*entities.User, error) {
	if m.getOrCreateFunc != nil {
		return m.getOrCreateFunc(ctx, identity)
	}
	return &entities.User{TgID: identity.TgID, FirstName: identity.FirstName}, nil
}

func (m *mockUserRepository) GetByTelegramID(ctx context.Context, tgID int64) (*entities.User, error) {
	if m.getByTelegramIDFunc != nil {
		return m.getByTelegramIDFunc(ctx, tgID)
	}
	return nil, usererrors.ErrUserNotFound
}

func (m *mockUserRepository) SetBlocked(ctx context.Context, tgID int64, blocked bool) error {
	return nil
}

func (m *mockUserRepository) SetAdmin(ctx context.Context, tgID int64, admin bool) error {
	return nil
}

func (m *mockUserRepository) ListActiveRecipientIDs(ctx context.Context) ([]int64, error) {
	return nil, nil
}

func (m *mockUserRepository) TopByWatched(ctx context.Context, limit int) ([]entities.User, error) {
	return nil, nil
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name      string
		allowlist []int64
		stored    *entities.User
		storedErr error
		tgID      int64
		want      bool
	}{
		{
			name:      "allowlisted user without db row",
			allowlist: []int64{42},
			storedErr: usererrors.ErrUserNotFound,
			tgID:      42,
			want:      true,
		},
		{
			name:   "persisted admin flag",
			stored: &entities.User{TgID: 99, IsAdmin: true},
			tgID:   99,
			want:   true,
		},
		{
			name:   "plain user",
			stored: &entities.User{TgID: 7},
			tgID:   7,
			want:   false,
		},
		{
			name:      "store error denies",
			storedErr: errors.New("connection refused"),
			tgID:      7,
			want:      false,
		},
		{
			name:      "unknown user denies",
			storedErr: usererrors.ErrUserNotFound,
			tgID:      7,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				getByTelegramIDFunc: func(ctx context.Context, tgID int64) (*entities.User, error) {
					if tt.storedErr != nil {
						return nil, tt.storedErr
					}
					return tt.stored, nil
				},
			}
			uc := NewUseCase(repo, tt.allowlist, zerolog.Nop())
			require.Equal(t, tt.want, uc.IsAdmin(context.Background(), tt.tgID))
		})
	}
}

func TestTouch_PassesIdentityThrough(t *testing.T) {
	var got entities.Identity
	repo := &mockUserRepository{
		getOrCreateFunc: func(ctx context.Context, identity entities.Identity) (*entities.User, error) {
			got = identity
			return &entities.User{TgID: identity.TgID}, nil
		},
	}
	uc := NewUseCase(repo, nil, zerolog.Nop())

	user, err := uc.Touch(context.Background(), entities.Identity{TgID: 42, FirstName: "Ali", Username: "ali"})
	require.NoError(t, err)
	require.Equal(t, int64(42), user.TgID)
	require.Equal(t, "Ali", got.FirstName)
	require.Equal(t, "ali", got.Username)
}

func TestTouch_PropagatesStoreErrors(t *testing.T) {
	dbErr := errors.New("deadlock detected")
	repo := &mockUserRepository{
		getOrCreateFunc: func(ctx context.Context, identity entities.Identity) (*entities.User, error) {
			return nil, dbErr
		},
	}
	uc := NewUseCase(repo, nil, zerolog.Nop())

	_, err := uc.Touch(context.Background(), entities.Identity{TgID: 42})
	require.ErrorIs(t, err, dbErr)
}
