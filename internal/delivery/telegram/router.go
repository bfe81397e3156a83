package telegram

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/session"
)

// Router registers Telegram bot handlers
type Router struct {
	handlers *Handlers
	logger   zerolog.Logger
}

// NewRouter creates new Telegram router
func NewRouter(handlers *Handlers, logger zerolog.Logger) *Router {
	return &Router{
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterRoutes registers all command and callback handlers on the bot
func (r *Router) RegisterRoutes(bot *tgbot.Bot) {
	h := r.handlers

	// Commands
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypeExact, h.HandleStart)
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/help", tgbot.MatchTypeExact, h.HandleHelp)
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/profile", tgbot.MatchTypeExact, h.HandleProfile)
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/cancel", tgbot.MatchTypeExact, h.HandleCancel)
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/admin", tgbot.MatchTypeExact, h.HandleAdmin)

	// User callbacks
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "check_subscription", tgbot.MatchTypeExact, h.HandleCheckSubscription)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "search_again", tgbot.MatchTypeExact, h.HandleSearchAgain)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "close", tgbot.MatchTypeExact, h.HandleClose)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "cancel", tgbot.MatchTypeExact, h.HandleCancel)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "rate_", tgbot.MatchTypePrefix, h.HandleRate)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "star_", tgbot.MatchTypePrefix, h.HandleStars)

	// Admin panel navigation
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "admin_movies", tgbot.MatchTypeExact, h.HandleAdminMenu)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "admin_channels", tgbot.MatchTypeExact, h.HandleAdminMenu)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "admin_stats", tgbot.MatchTypeExact, h.HandleAdminMenu)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "back_to_admin", tgbot.MatchTypeExact, h.HandleAdminMenu)

	// Admin dialogs
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "add_movie", tgbot.MatchTypeExact, h.HandleDialogStart)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "delete_movie", tgbot.MatchTypeExact, h.HandleDialogStart)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "add_channel", tgbot.MatchTypeExact, h.HandleDialogStart)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "delete_channel", tgbot.MatchTypeExact, h.HandleDialogStart)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "admin_broadcast", tgbot.MatchTypeExact, h.HandleDialogStart)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "confirm_delete_movie_", tgbot.MatchTypePrefix, h.HandleConfirmDeleteMovie)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "broadcast_confirm", tgbot.MatchTypeExact, h.HandleBroadcastConfirm)

	// Admin lists and statistics
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "list_movies", tgbot.MatchTypePrefix, h.HandleListMovies)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "list_channels", tgbot.MatchTypeExact, h.HandleListChannels)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "stats_", tgbot.MatchTypePrefix, h.HandleStats)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "top_movies", tgbot.MatchTypeExact, h.HandleTopMovies)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, "top_users", tgbot.MatchTypeExact, h.HandleTopUsers)

	r.logger.Info().Msg("All Telegram handlers registered successfully")
}

// HandleDefault catches everything unmatched: admin dialog steps first,
// then numeric movie codes, then a usage hint.
func (h *Handlers) HandleDefault(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		answerCallback(ctx, b, update, "")
		return
	}

	identity := identityFrom(update)
	if identity == nil {
		return
	}

	sess, err := h.sessions.Get(ctx, identity.TgID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", identity.TgID).Msg("Failed to load session")
		sess = &session.Session{State: session.StateIdle}
	}
	if sess.State != session.StateIdle {
		h.handleSessionMessage(ctx, b, update, sess)
		return
	}

	if h.codeRe.MatchString(update.Message.Text) {
		h.handleCodeLookup(ctx, b, update)
		return
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   "🔢 Kino olish uchun kodni yuboring yoki /help buyrug'idan foydalaning.",
	})
}
