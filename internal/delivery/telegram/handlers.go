package telegram

import (
	"context"
	"fmt"
	"regexp"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/muhammadrizo00/Kinamax-Pro/config"
	broadcastdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/deps"
	catalogdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/deps"
	ratingdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/deps"
	statsdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/deps"
	subdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/deps"
	userdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/deps"
	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/session"
)

// Handlers contains Telegram update handlers for user and admin flows
type Handlers struct {
	users      userdeps.UserUseCase
	catalog    catalogdeps.CatalogUseCase
	subs       subdeps.SubscriptionUseCase
	ratings    ratingdeps.RatingUseCase
	broadcasts broadcastdeps.BroadcastUseCase
	stats      statsdeps.StatsUseCase
	gateway    *Gateway
	sessions   session.Store
	cfg        *config.BotConfig
	logger     zerolog.Logger
	codeRe     *regexp.Regexp
	throttle   *userThrottle
}

// NewHandlers creates new Telegram handlers
func NewHandlers(
	users userdeps.UserUseCase,
	catalog catalogdeps.CatalogUseCase,
	subs subdeps.SubscriptionUseCase,
	ratings ratingdeps.RatingUseCase,
	broadcasts broadcastdeps.BroadcastUseCase,
	stats statsdeps.StatsUseCase,
	gateway *Gateway,
	sessions session.Store,
	cfg *config.BotConfig,
	logger zerolog.Logger,
) *Handlers {
	return &Handlers{
		users:      users,
		catalog:    catalog,
		subs:       subs,
		ratings:    ratings,
		broadcasts: broadcasts,
		stats:      stats,
		gateway:    gateway,
		sessions:   sessions,
		cfg:        cfg,
		logger:     logger.With().Str("component", "handlers").Logger(),
		codeRe:     regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, cfg.CodeLength)),
		throttle:   newUserThrottle(),
	}
}

// identityFrom extracts the acting user from either update shape.
// Returns nil for updates without a human sender (channel posts etc).
func identityFrom(update *models.Update) *userentities.Identity {
	var from *models.User
	switch {
	case update.Message != nil && update.Message.From != nil:
		from = update.Message.From
	case update.CallbackQuery != nil:
		from = &update.CallbackQuery.From
	default:
		return nil
	}

	return &userentities.Identity{
		TgID:      from.ID,
		FirstName: from.FirstName,
		Username:  from.Username,
	}
}

// chatIDFrom returns the chat to answer in, or 0 when there is none
func chatIDFrom(update *models.Update) int64 {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil:
		return update.CallbackQuery.Message.Message.Chat.ID
	default:
		return 0
	}
}

// LoggingMiddleware logs every incoming update
func (h *Handlers) LoggingMiddleware(next tgbot.HandlerFunc) tgbot.HandlerFunc {
	return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
		ev := h.logger.Debug().Int64("update_id", update.ID)
		if id := identityFrom(update); id != nil {
			ev = ev.Int64("user_id", id.TgID)
		}
		if update.CallbackQuery != nil {
			ev = ev.Str("callback", update.CallbackQuery.Data)
		}
		ev.Msg("Processing update")

		next(ctx, b, update)
	}
}

// ThrottleMiddleware drops messages from users sending faster than one
// per second. Callback queries pass through untouched.
func (h *Handlers) ThrottleMiddleware(next tgbot.HandlerFunc) tgbot.HandlerFunc {
	return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
		if update.Message != nil {
			if id := identityFrom(update); id != nil && !h.throttle.Allow(id.TgID) {
				h.logger.Debug().Int64("user_id", id.TgID).Msg("Throttled message dropped")
				return
			}
		}
		next(ctx, b, update)
	}
}

// UserMiddleware upserts the acting user on every update and drops
// updates from blocked users before any handler sees them.
func (h *Handlers) UserMiddleware(next tgbot.HandlerFunc) tgbot.HandlerFunc {
	return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
		identity := identityFrom(update)
		if identity == nil {
			next(ctx, b, update)
			return
		}

		user, err := h.users.Touch(ctx, *identity)
		if err != nil {
			h.logger.Error().Err(err).Int64("user_id", identity.TgID).Msg("Failed to upsert user")
			next(ctx, b, update)
			return
		}

		if user.IsBlocked {
			h.logger.Warn().Int64("user_id", identity.TgID).Msg("Blocked user ignored")
			if update.CallbackQuery != nil {
				_, _ = b.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
					CallbackQueryID: update.CallbackQuery.ID,
					Text:            "⛔️ Siz botdan foydalanishdan bloklangansiz.",
					ShowAlert:       true,
				})
			}
			return
		}

		next(ctx, b, update)
	}
}

// requireAdmin answers non-admins and reports whether to proceed
func (h *Handlers) requireAdmin(ctx context.Context, b *tgbot.Bot, update *models.Update) bool {
	identity := identityFrom(update)
	if identity == nil {
		return false
	}
	if h.users.IsAdmin(ctx, identity.TgID) {
		return true
	}

	if update.CallbackQuery != nil {
		_, _ = b.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            "⛔️ Bu buyruq faqat adminlar uchun.",
			ShowAlert:       true,
		})
	} else if chatID := chatIDFrom(update); chatID != 0 {
		_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text:   "⛔️ Bu buyruq faqat adminlar uchun.",
		})
	}
	return false
}

// answerCallback acknowledges a callback query so the client stops the
// loading spinner
func answerCallback(ctx context.Context, b *tgbot.Bot, update *models.Update, text string) {
	if update.CallbackQuery == nil {
		return
	}
	_, _ = b.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
		Text:            text,
	})
}
