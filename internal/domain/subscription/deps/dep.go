package deps

import (
	"context"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/entities"
)

type ChannelRepository interface {
	Create(ctx context.Context, channel *entities.Channel) error
	// Delete removes the channel matched by platform id or username;
	// its subscriptions cascade in the store.
	Delete(ctx context.Context, ref string) (*entities.Channel, error)
	List(ctx context.Context) ([]entities.Channel, error)
	ListActiveMandatory(ctx context.Context) ([]entities.Channel, error)
}

// MembershipChecker asks the chat platform whether a user belongs to a
// channel. Implemented by the Telegram delivery layer.
type MembershipChecker interface {
	IsMember(ctx context.Context, channelID int64, userID int64) (bool, error)
}

// GateResult is the outcome of a subscription gate check
type GateResult struct {
	Satisfied bool
	Missing   []entities.Channel
}

type SubscriptionUseCase interface {
	AddChannel(ctx context.Context, channel *entities.Channel) error
	DeleteChannel(ctx context.Context, ref string) (*entities.Channel, error)
	ListChannels(ctx context.Context) ([]entities.Channel, error)
	ListMandatory(ctx context.Context) ([]entities.Channel, error)
	// Check verifies the user against every active mandatory channel;
	// lookups that error or time out count the channel as missing.
	Check(ctx context.Context, userID int64) (GateResult, error)
}
