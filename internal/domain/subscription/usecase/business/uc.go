package business

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/entities"
)

// membershipTimeout bounds each platform lookup; a timed-out lookup is
// treated the same as non-membership.
const membershipTimeout = 5 * time.Second

type UseCase struct {
	repo       deps.ChannelRepository
	membership deps.MembershipChecker
	logger     zerolog.Logger
}

func NewUseCase(
	repo deps.ChannelRepository,
	membership deps.MembershipChecker,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:       repo,
		membership: membership,
		logger:     logger,
	}
}

func (u *UseCase) AddChannel(ctx context.Context, channel *entities.Channel) error {
	if err := u.repo.Create(ctx, channel); err != nil {
		u.logger.Error().Err(err).Int64("channel_id", channel.ChannelID).Msg("failed to add channel")
		return err
	}

	u.logger.Info().
		Int64("channel_id", channel.ChannelID).
		Str("title", channel.Title).
		Str("type", string(channel.Type)).
		Msg("channel added")
	return nil
}

func (u *UseCase) DeleteChannel(ctx context.Context, ref string) (*entities.Channel, error) {
	channel, err := u.repo.Delete(ctx, ref)
	if err != nil {
		return nil, err
	}

	u.logger.Info().Int64("channel_id", channel.ChannelID).Msg("channel deleted")
	return channel, nil
}

func (u *UseCase) ListChannels(ctx context.Context) ([]entities.Channel, error) {
	return u.repo.List(ctx)
}

func (u *UseCase) ListMandatory(ctx context.Context) ([]entities.Channel, error) {
	return u.repo.ListActiveMandatory(ctx)
}

// Check is fail-closed: a membership lookup that errors counts the channel
// as missing rather than waving the user through. With no mandatory
// channels configured the gate is trivially satisfied.
func (u *UseCase) Check(ctx context.Context, userID int64) (deps.GateResult, error) {
	channels, err := u.repo.ListActiveMandatory(ctx)
	if err != nil {
		return deps.GateResult{}, err
	}

	var missing []entities.Channel
	for _, channel := range channels {
		checkCtx, cancel := context.WithTimeout(ctx, membershipTimeout)
		member, err := u.membership.IsMember(checkCtx, channel.ChannelID, userID)
		cancel()

		if err != nil {
			u.logger.Warn().
				Err(err).
				Int64("channel_id", channel.ChannelID).
				Int64("user_id", userID).
				Msg("membership check failed, treating as not subscribed")
			missing = append(missing, channel)
			continue
		}
		if !member {
			missing = append(missing, channel)
		}
	}

	return deps.GateResult{
		Satisfied: len(missing) == 0,
		Missing:   missing,
	}, nil
}
