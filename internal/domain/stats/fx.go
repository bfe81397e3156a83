package stats

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/repository/postgres"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/usecase/business"
)

var Module = fx.Module(
	"stats",
	fx.Provide(
		NewRepository,
		NewUseCase,
	),
)

func NewRepository(db *gorm.DB) deps.StatsRepository {
	return postgres.NewRepository(db)
}

func NewUseCase(repo deps.StatsRepository, logger zerolog.Logger) deps.StatsUseCase {
	return business.NewUseCase(repo, logger)
}
