package infrastructure

import (
	"go.uber.org/fx"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/database"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/kafka"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/logger"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/session"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/telegram"
)

// Module aggregates all infrastructure modules
var Module = fx.Module("infrastructure",
	logger.Module,
	database.Module,
	kafka.Module,
	session.Module,
	telegram.Module,
)
