package rating

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/repository/postgres"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/usecase/business"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/kafka"
)

var Module = fx.Module(
	"rating",
	fx.Provide(
		NewRepository,
		NewEventPublisher,
		NewUseCase,
	),
)

func NewRepository(db *gorm.DB) deps.RatingRepository {
	return postgres.NewRepository(db)
}

func NewEventPublisher(events *kafka.Events) deps.EventPublisher {
	return events
}

func NewUseCase(repo deps.RatingRepository, events deps.EventPublisher, logger zerolog.Logger) deps.RatingUseCase {
	return business.NewUseCase(repo, events, logger)
}
