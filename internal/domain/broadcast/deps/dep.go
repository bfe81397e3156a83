package deps

import (
	"context"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/entities"
)

type BroadcastRepository interface {
	Create(ctx context.Context, broadcast *entities.Broadcast) error
	Complete(ctx context.Context, id uint, result entities.Result) error
}

// Sender delivers the payload to one recipient. Implemented by the
// Telegram delivery layer.
type Sender interface {
	Send(ctx context.Context, recipientTgID int64, payload entities.Payload) error
}

// UserSource yields the recipient set for a run
type UserSource interface {
	ListActiveRecipientIDs(ctx context.Context) ([]int64, error)
}

type EventPublisher interface {
	BroadcastCompleted(ctx context.Context, broadcastID uint, sent, failed, total int, createdBy int64) error
}

// ProgressFunc observes a running broadcast at coarse granularity.
// Best effort only, never required for correctness.
type ProgressFunc func(done, total int)

type BroadcastUseCase interface {
	// Dispatch delivers the payload to every non-blocked user once.
	// Per-recipient failures are counted and never abort the run.
	Dispatch(ctx context.Context, payload entities.Payload, initiatorID int64, onProgress ProgressFunc) (*entities.Result, error)
}
