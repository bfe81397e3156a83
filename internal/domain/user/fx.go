package user

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/config"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/repository/postgres"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/usecase/business"
)

var Module = fx.Module(
	"user",
	fx.Provide(
		NewRepository,
		NewUseCase,
	),
)

func NewRepository(db *gorm.DB) deps.UserRepository {
	return postgres.NewRepository(db)
}

func NewUseCase(repo deps.UserRepository, cfg *config.BotConfig, logger zerolog.Logger) deps.UserUseCase {
	return business.NewUseCase(repo, cfg.AdminIDs, logger)
}
