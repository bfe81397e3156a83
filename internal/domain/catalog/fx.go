package catalog

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/config"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/repository/postgres"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/usecase/business"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/kafka"
)

var Module = fx.Module(
	"catalog",
	fx.Provide(
		NewRepository,
		NewEventPublisher,
		NewUseCase,
	),
)

func NewRepository(db *gorm.DB) deps.MovieRepository {
	return postgres.NewRepository(db)
}

func NewEventPublisher(events *kafka.Events) deps.EventPublisher {
	return events
}

func NewUseCase(
	repo deps.MovieRepository,
	events deps.EventPublisher,
	cfg *config.BotConfig,
	logger zerolog.Logger,
) deps.CatalogUseCase {
	return business.NewUseCase(repo, events, cfg.CodeLength, cfg.PageSize, logger)
}
