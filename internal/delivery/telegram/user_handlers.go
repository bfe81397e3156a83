package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	catalogerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/errors"
	ratingentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/entities"
	ratingerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/errors"
)

const welcomeText = `🎬 <b>KinaMax botiga xush kelibsiz!</b>

Kino olish uchun 4 xonali kodni yuboring.

Buyruqlar:
/profile — profilingiz
/help — yordam`

const helpText = `ℹ️ <b>Yordam</b>

🔢 Kino olish uchun kodni yuboring (masalan: <code>1234</code>)
👤 /profile — ko'rilgan kinolar va baholaringiz
❌ /cancel — joriy amalni bekor qilish`

// HandleStart greets the user, gated on mandatory channel membership
func (h *Handlers) HandleStart(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	identity := identityFrom(update)
	if identity == nil {
		return
	}

	if !h.ensureSubscribed(ctx, b, update.Message.Chat.ID, identity.TgID) {
		return
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      welcomeText,
		ParseMode: models.ParseModeHTML,
	})
}

// HandleHelp sends usage instructions
func (h *Handlers) HandleHelp(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      helpText,
		ParseMode: models.ParseModeHTML,
	})
}

// HandleProfile shows the user's own statistics
func (h *Handlers) HandleProfile(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	identity := identityFrom(update)
	if identity == nil {
		return
	}

	user, err := h.users.GetByTelegramID(ctx, identity.TgID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", identity.TgID).Msg("Failed to load profile")
		h.sendError(ctx, b, update.Message.Chat.ID)
		return
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      formatProfile(user),
		ParseMode: models.ParseModeHTML,
	})
}

// HandleCancel aborts any in-progress admin dialog
func (h *Handlers) HandleCancel(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	identity := identityFrom(update)
	if identity == nil {
		return
	}

	if err := h.sessions.Clear(ctx, identity.TgID); err != nil {
		h.logger.Error().Err(err).Int64("user_id", identity.TgID).Msg("Failed to clear session")
	}

	answerCallback(ctx, b, update, "")

	if chatID := chatIDFrom(update); chatID != 0 {
		_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Amal bekor qilindi.",
		})
	}
}

// handleCodeLookup resolves a numeric code to a movie and delivers it
func (h *Handlers) handleCodeLookup(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	identity := identityFrom(update)
	if identity == nil {
		return
	}
	chatID := update.Message.Chat.ID
	code := strings.TrimSpace(update.Message.Text)

	if !h.ensureSubscribed(ctx, b, chatID, identity.TgID) {
		return
	}

	movie, err := h.catalog.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrMovieNotFound) {
			_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
				ChatID: chatID,
				Text:   "🔍 Bunday kodli kino topilmadi. Kodni tekshirib qayta yuboring.",
			})
			return
		}
		h.logger.Error().Err(err).Str("code", code).Msg("Failed to look up movie")
		h.sendError(ctx, b, chatID)
		return
	}

	_, err = b.SendVideo(ctx, &tgbot.SendVideoParams{
		ChatID:      chatID,
		Video:       &models.InputFileString{Data: movie.FileID},
		Caption:     formatMovieCaption(movie),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: ratingKeyboard(movie.ID),
	})
	if err != nil {
		h.logger.Error().Err(err).Uint("movie_id", movie.ID).Msg("Failed to deliver movie")
		h.sendError(ctx, b, chatID)
		return
	}

	// Count the view only after successful delivery
	if err := h.catalog.RecordView(ctx, movie.ID, identity.TgID); err != nil {
		h.logger.Error().Err(err).Uint("movie_id", movie.ID).Msg("Failed to record view")
	}
}

// HandleRate handles like/dislike callbacks (rate_like_<id>, rate_dislike_<id>)
func (h *Handlers) HandleRate(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	data := update.CallbackQuery.Data

	var kind ratingentities.Kind
	var rest string
	switch {
	case strings.HasPrefix(data, "rate_like_"):
		kind, rest = ratingentities.KindLike, strings.TrimPrefix(data, "rate_like_")
	case strings.HasPrefix(data, "rate_dislike_"):
		kind, rest = ratingentities.KindDislike, strings.TrimPrefix(data, "rate_dislike_")
	default:
		answerCallback(ctx, b, update, "")
		return
	}

	movieID, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		answerCallback(ctx, b, update, "")
		return
	}

	h.applyRating(ctx, b, update, uint(movieID), kind, 0)
}

// HandleStars handles star rating callbacks (star_<n>_<id>)
func (h *Handlers) HandleStars(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	parts := strings.Split(update.CallbackQuery.Data, "_")
	if len(parts) != 3 {
		answerCallback(ctx, b, update, "")
		return
	}

	stars, err1 := strconv.Atoi(parts[1])
	movieID, err2 := strconv.ParseUint(parts[2], 10, 32)
	if err1 != nil || err2 != nil {
		answerCallback(ctx, b, update, "")
		return
	}

	h.applyRating(ctx, b, update, uint(movieID), ratingentities.KindStars, stars)
}

func (h *Handlers) applyRating(ctx context.Context, b *tgbot.Bot, update *models.Update, movieID uint, kind ratingentities.Kind, stars int) {
	identity := identityFrom(update)
	if identity == nil {
		return
	}

	_, err := h.ratings.Rate(ctx, identity.TgID, movieID, kind, stars)
	if err != nil {
		switch {
		case errors.Is(err, ratingerrors.ErrAlreadyRated):
			_, _ = b.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
				CallbackQueryID: update.CallbackQuery.ID,
				Text:            "⚠️ Siz bu kinoni allaqachon baholagansiz.",
				ShowAlert:       true,
			})
		case errors.Is(err, ratingerrors.ErrMovieNotFound):
			answerCallback(ctx, b, update, "🔍 Kino topilmadi.")
		default:
			h.logger.Error().Err(err).Uint("movie_id", movieID).Msg("Failed to save rating")
			answerCallback(ctx, b, update, "❌ Xatolik yuz berdi.")
		}
		return
	}

	answerCallback(ctx, b, update, "✅ Bahoyingiz qabul qilindi!")

	if msg := update.CallbackQuery.Message.Message; msg != nil {
		_, _ = b.EditMessageReplyMarkup(ctx, &tgbot.EditMessageReplyMarkupParams{
			ChatID:      msg.Chat.ID,
			MessageID:   msg.ID,
			ReplyMarkup: ratingThanksKeyboard(),
		})
	}
}

// HandleCheckSubscription re-runs the gate after the user joined channels
func (h *Handlers) HandleCheckSubscription(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	identity := identityFrom(update)
	if identity == nil {
		return
	}

	result, err := h.subs.Check(ctx, identity.TgID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", identity.TgID).Msg("Subscription check failed")
		answerCallback(ctx, b, update, "❌ Xatolik yuz berdi.")
		return
	}

	if !result.Satisfied {
		_, _ = b.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            "⚠️ Siz hali barcha kanallarga obuna bo'lmagansiz.",
			ShowAlert:       true,
		})
		return
	}

	answerCallback(ctx, b, update, "✅ Obuna tasdiqlandi!")

	if msg := update.CallbackQuery.Message.Message; msg != nil {
		_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
			ChatID:    msg.Chat.ID,
			MessageID: msg.ID,
			Text:      "✅ Obuna tasdiqlandi! Kino olish uchun kodni yuboring.",
		})
	}
}

// HandleSearchAgain prompts for the next code
func (h *Handlers) HandleSearchAgain(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	answerCallback(ctx, b, update, "")

	if chatID := chatIDFrom(update); chatID != 0 {
		_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text:   "🔢 Kino kodini yuboring:",
		})
	}
}

// HandleClose removes the inline keyboard under a delivered movie
func (h *Handlers) HandleClose(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	answerCallback(ctx, b, update, "")

	if msg := update.CallbackQuery.Message.Message; msg != nil {
		_, _ = b.EditMessageReplyMarkup(ctx, &tgbot.EditMessageReplyMarkupParams{
			ChatID:      msg.Chat.ID,
			MessageID:   msg.ID,
			ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{}},
		})
	}
}

// ensureSubscribed runs the mandatory channel gate. When the gate is not
// satisfied it sends the join prompt and reports false; admins bypass it.
func (h *Handlers) ensureSubscribed(ctx context.Context, b *tgbot.Bot, chatID, userID int64) bool {
	if h.users.IsAdmin(ctx, userID) {
		return true
	}

	result, err := h.subs.Check(ctx, userID)
	if err != nil {
		h.logger.Error().Err(err).Int64("user_id", userID).Msg("Subscription check failed")
		h.sendError(ctx, b, chatID)
		return false
	}
	if result.Satisfied {
		return true
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        "📢 Botdan foydalanish uchun quyidagi kanallarga obuna bo'ling:",
		ReplyMarkup: subscriptionKeyboard(result.Missing),
	})
	return false
}

func (h *Handlers) sendError(ctx context.Context, b *tgbot.Bot, chatID int64) {
	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   "❌ Xatolik yuz berdi. Keyinroq qayta urinib ko'ring.",
	})
}
