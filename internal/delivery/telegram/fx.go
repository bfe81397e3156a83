package telegram

import (
	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	broadcastdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/deps"
	subdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/deps"
	infratelegram "github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/telegram"
)

// Module provides the Telegram delivery layer for fx dependency injection
var Module = fx.Module("delivery",
	fx.Provide(
		NewGateway,
		NewHandlers,
		NewRouter,
		provideBotOptions,
		provideMembershipChecker,
		provideSender,
	),
	fx.Invoke(registerRoutes),
)

func provideBotOptions(h *Handlers) *infratelegram.BotOptions {
	return &infratelegram.BotOptions{
		Options: []tgbot.Option{
			tgbot.WithMiddlewares(h.LoggingMiddleware, h.ThrottleMiddleware, h.UserMiddleware),
			tgbot.WithDefaultHandler(h.HandleDefault),
		},
	}
}

func provideMembershipChecker(g *Gateway) subdeps.MembershipChecker {
	return g
}

func provideSender(g *Gateway) broadcastdeps.Sender {
	return g
}

// registerRoutes closes the gateway/bot construction loop and registers
// every handler before polling starts
func registerRoutes(g *Gateway, bot *tgbot.Bot, router *Router, logger zerolog.Logger) {
	g.Bind(bot)
	router.RegisterRoutes(bot)
	logger.Info().Msg("Telegram delivery layer wired")
}
