package broadcast

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/repository/postgres"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/usecase/business"
	userdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/kafka"
)

var Module = fx.Module(
	"broadcast",
	fx.Provide(
		NewRepository,
		NewUserSource,
		NewEventPublisher,
		NewUseCase,
	),
)

func NewRepository(db *gorm.DB) deps.BroadcastRepository {
	return postgres.NewRepository(db)
}

func NewUserSource(users userdeps.UserUseCase) deps.UserSource {
	return users
}

func NewEventPublisher(events *kafka.Events) deps.EventPublisher {
	return events
}

func NewUseCase(
	repo deps.BroadcastRepository,
	users deps.UserSource,
	sender deps.Sender,
	events deps.EventPublisher,
	logger zerolog.Logger,
) deps.BroadcastUseCase {
	return business.NewUseCase(repo, users, sender, events, logger)
}
