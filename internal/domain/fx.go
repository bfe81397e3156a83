package domain

import (
	"go.uber.org/fx"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user"
)

// Module aggregates all domain feature modules
var Module = fx.Module("domain",
	user.Module,
	catalog.Module,
	subscription.Module,
	rating.Module,
	broadcast.Module,
	stats.Module,
)
