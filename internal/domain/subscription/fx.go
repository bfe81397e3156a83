package subscription

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/deps"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/repository/postgres"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/usecase/business"
)

var Module = fx.Module(
	"subscription",
	fx.Provide(
		NewRepository,
		NewUseCase,
	),
)

func NewRepository(db *gorm.DB) deps.ChannelRepository {
	return postgres.NewRepository(db)
}

func NewUseCase(
	repo deps.ChannelRepository,
	membership deps.MembershipChecker,
	logger zerolog.Logger,
) deps.SubscriptionUseCase {
	return business.NewUseCase(repo, membership, logger)
}
