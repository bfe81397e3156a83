// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/muhammadrizo00/Kinamax-Pro/config"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/delivery/telegram"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, database, kafka, sessions, telegram bot)
		infrastructure.Module,

		// Domain (users, catalog, subscriptions, ratings, broadcasts, stats)
		domain.Module,

		// Delivery (handlers, routing, gateway adapters)
		telegram.Module,
	)
}
