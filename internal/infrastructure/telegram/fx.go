// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/muhammadrizo00/Kinamax-Pro/config"
)

// BotOptions carries delivery-layer options (middlewares, default handler)
// into bot construction. The delivery package provides it; keeping the type
// here avoids an import cycle between infrastructure and delivery.
type BotOptions struct {
	Options []tgbot.Option
}

// Module provides Telegram bot for fx dependency injection
var Module = fx.Module("telegram",
	fx.Provide(provideBot, provideRaw),
	fx.Invoke(registerLifecycle),
)

// provideBot creates Telegram bot from config
func provideBot(cfg *config.TelegramConfig, opts *BotOptions, logger zerolog.Logger) (*Bot, error) {
	return NewBot(cfg.BotToken, logger, opts.Options...)
}

func provideRaw(b *Bot) *tgbot.Bot {
	return b.Raw()
}

// registerLifecycle registers bot lifecycle hooks
func registerLifecycle(lc fx.Lifecycle, bot *Bot) {
	var cancel context.CancelFunc

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Create a long-lived context for the bot
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			// Start bot in a goroutine since it's a blocking call
			go func() {
				_ = bot.Start(ctx)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cancel != nil {
				cancel()
			}
			return nil
		},
	})
}
