package business

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/entities"
)

// deliveryTimeout bounds each recipient delivery so one stuck send cannot
// stall the whole run.
const deliveryTimeout = 10 * time.Second

type UseCase struct {
	repo   deps.BroadcastRepository
	users  deps.UserSource
	sender deps.Sender
	events deps.EventPublisher
	logger zerolog.Logger
}

func NewUseCase(
	repo deps.BroadcastRepository,
	users deps.UserSource,
	sender deps.Sender,
	events deps.EventPublisher,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:   repo,
		users:  users,
		sender: sender,
		events: events,
		logger: logger,
	}
}

// Dispatch iterates the recipient set once. Every delivery is independent:
// a failed one is counted and the loop moves on, no retries within a run.
func (u *UseCase) Dispatch(ctx context.Context, payload entities.Payload, initiatorID int64, onProgress deps.ProgressFunc) (*entities.Result, error) {
	recipients, err := u.users.ListActiveRecipientIDs(ctx)
	if err != nil {
		return nil, err
	}

	audit := &entities.Broadcast{
		PayloadChatID:    payload.FromChatID,
		PayloadMessageID: payload.MessageID,
		CreatedBy:        initiatorID,
		TotalCount:       len(recipients),
	}
	if err := u.repo.Create(ctx, audit); err != nil {
		u.logger.Error().Err(err).Msg("failed to create broadcast record")
		return nil, err
	}

	total := len(recipients)
	progressStep := total / 10
	if progressStep < 1 {
		progressStep = 1
	}

	result := entities.Result{Total: total}
	for i, recipientID := range recipients {
		sendCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
		err := u.sender.Send(sendCtx, recipientID, payload)
		cancel()

		if err != nil {
			result.Failed++
			u.logger.Debug().
				Err(err).
				Int64("recipient", recipientID).
				Msg("broadcast delivery failed")
		} else {
			result.Sent++
		}

		if onProgress != nil && (i+1)%progressStep == 0 {
			onProgress(i+1, total)
		}
	}

	if err := u.repo.Complete(ctx, audit.ID, result); err != nil {
		u.logger.Error().Err(err).Uint("broadcast_id", audit.ID).Msg("failed to complete broadcast record")
		return nil, err
	}

	u.logger.Info().
		Uint("broadcast_id", audit.ID).
		Int("sent", result.Sent).
		Int("failed", result.Failed).
		Int("total", result.Total).
		Msg("broadcast completed")

	if err := u.events.BroadcastCompleted(ctx, audit.ID, result.Sent, result.Failed, result.Total, initiatorID); err != nil {
		u.logger.Warn().Err(err).Uint("broadcast_id", audit.ID).Msg("failed to publish broadcast event")
	}

	return &result, nil
}
