package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	broadcastentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/entities"
	catalogdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/deps"
	catalogerrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/errors"
	statsentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/entities"
	suberrors "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/errors"
	"github.com/muhammadrizo00/Kinamax-Pro/internal/infrastructure/session"
)

const topListLimit = 10

// HandleAdmin shows the admin panel
func (h *Handlers) HandleAdmin(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "🛠 <b>Admin panel</b>\n\nBo'limni tanlang:",
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: adminMainMenu(),
	})
}

// HandleAdminMenu routes the static admin panel callbacks
func (h *Handlers) HandleAdminMenu(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	answerCallback(ctx, b, update, "")

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	var text string
	var markup models.ReplyMarkup
	switch update.CallbackQuery.Data {
	case "admin_movies":
		text, markup = "🎬 <b>Kino boshqaruvi</b>", movieManagementMenu()
	case "admin_channels":
		text, markup = "📢 <b>Kanal boshqaruvi</b>", channelManagementMenu()
	case "admin_stats":
		text, markup = "📊 <b>Statistika</b>", statisticsMenu()
	case "back_to_admin":
		text, markup = "🛠 <b>Admin panel</b>\n\nBo'limni tanlang:", adminMainMenu()
	default:
		return
	}

	_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: markup,
	})
}

// HandleDialogStart opens one of the multi-message admin dialogs by
// storing the first awaited step in the session store.
func (h *Handlers) HandleDialogStart(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	answerCallback(ctx, b, update, "")

	identity := identityFrom(update)
	chatID := chatIDFrom(update)
	if identity == nil || chatID == 0 {
		return
	}

	var state session.State
	var prompt string
	switch update.CallbackQuery.Data {
	case "add_movie":
		state, prompt = session.StateAwaitingContent, "🎥 Kino videosini yuboring:"
	case "delete_movie":
		state, prompt = session.StateAwaitingMovieDelete, "🗑 O'chiriladigan kino kodini yuboring:"
	case "add_channel":
		state, prompt = session.StateAwaitingChannelID, "📢 Kanal @username yoki ID raqamini yuboring.\n\nBot kanalda admin bo'lishi shart."
	case "delete_channel":
		state, prompt = session.StateAwaitingChannelDelete, "🗑 O'chiriladigan kanal @username yoki ID raqamini yuboring:"
	case "admin_broadcast":
		state, prompt = session.StateAwaitingBroadcastPayload, "📨 Yuboriladigan xabarni shu yerga tashlang (matn, rasm yoki video):"
	default:
		return
	}

	if err := h.sessions.Put(ctx, identity.TgID, &session.Session{State: state}); err != nil {
		h.logger.Error().Err(err).Int64("user_id", identity.TgID).Msg("Failed to open dialog session")
		h.sendError(ctx, b, chatID)
		return
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        prompt,
		ReplyMarkup: cancelKeyboard(),
	})
}

// handleSessionMessage advances an in-progress admin dialog by one step
func (h *Handlers) handleSessionMessage(ctx context.Context, b *tgbot.Bot, update *models.Update, sess *session.Session) {
	identity := identityFrom(update)
	if identity == nil || !h.users.IsAdmin(ctx, identity.TgID) {
		return
	}

	switch sess.State {
	case session.StateAwaitingContent:
		h.stepMovieContent(ctx, b, update, sess)
	case session.StateAwaitingTitle:
		h.stepMovieTitle(ctx, b, update, sess)
	case session.StateAwaitingDescription:
		h.stepMovieDescription(ctx, b, update, sess)
	case session.StateAwaitingMovieDelete:
		h.stepMovieDelete(ctx, b, update)
	case session.StateAwaitingChannelID:
		h.stepChannelAdd(ctx, b, update)
	case session.StateAwaitingChannelDelete:
		h.stepChannelDelete(ctx, b, update)
	case session.StateAwaitingBroadcastPayload:
		h.stepBroadcastPayload(ctx, b, update, sess)
	}
}

func (h *Handlers) stepMovieContent(ctx context.Context, b *tgbot.Bot, update *models.Update, sess *session.Session) {
	msg := update.Message
	chatID := msg.Chat.ID

	var fileID string
	switch {
	case msg.Video != nil:
		fileID = msg.Video.FileID
	case msg.Document != nil:
		fileID = msg.Document.FileID
	default:
		_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID:      chatID,
			Text:        "⚠️ Video yoki fayl yuboring.",
			ReplyMarkup: cancelKeyboard(),
		})
		return
	}

	channelFileID, channelMessageID, err := h.gateway.Relay(ctx, fileID)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to relay movie to storage channel")
		h.sendError(ctx, b, chatID)
		return
	}

	sess.FileID = channelFileID
	sess.ChannelMessageID = channelMessageID
	sess.State = session.StateAwaitingTitle
	if err := h.sessions.Put(ctx, msg.From.ID, sess); err != nil {
		h.logger.Error().Err(err).Msg("Failed to advance dialog session")
		h.sendError(ctx, b, chatID)
		return
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        "📝 Kino nomini yuboring:",
		ReplyMarkup: cancelKeyboard(),
	})
}

func (h *Handlers) stepMovieTitle(ctx context.Context, b *tgbot.Bot, update *models.Update, sess *session.Session) {
	msg := update.Message
	title := strings.TrimSpace(msg.Text)
	if title == "" {
		_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "⚠️ Kino nomi bo'sh bo'lishi mumkin emas.",
			ReplyMarkup: cancelKeyboard(),
		})
		return
	}

	sess.Title = title
	sess.State = session.StateAwaitingDescription
	if err := h.sessions.Put(ctx, msg.From.ID, sess); err != nil {
		h.logger.Error().Err(err).Msg("Failed to advance dialog session")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "📄 Kino tavsifini yuboring (kerak bo'lmasa \"-\" yuboring):",
		ReplyMarkup: cancelKeyboard(),
	})
}

func (h *Handlers) stepMovieDescription(ctx context.Context, b *tgbot.Bot, update *models.Update, sess *session.Session) {
	msg := update.Message
	chatID := msg.Chat.ID

	description := strings.TrimSpace(msg.Text)
	if description == "-" {
		description = ""
	}

	movie, err := h.catalog.Create(ctx, catalogdeps.NewMovie{
		Title:            sess.Title,
		Description:      description,
		FileID:           sess.FileID,
		ChannelMessageID: sess.ChannelMessageID,
		CreatedBy:        msg.From.ID,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to create movie")
		if errors.Is(err, catalogerrors.ErrCodeSpaceExhausted) {
			_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
				ChatID: chatID,
				Text:   "❌ Bo'sh kod topilmadi. Keyinroq qayta urinib ko'ring.",
			})
		} else {
			h.sendError(ctx, b, chatID)
		}
		return
	}

	_ = h.sessions.Clear(ctx, msg.From.ID)

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("✅ Kino qo'shildi!\n\n🎬 %s\n🔢 Kod: <code>%s</code>",
			movie.Title, movie.Code),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: backToAdminKeyboard(),
	})
}

func (h *Handlers) stepMovieDelete(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	msg := update.Message
	code := strings.TrimSpace(msg.Text)

	movie, err := h.catalog.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrMovieNotFound) {
			_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
				ChatID:      msg.Chat.ID,
				Text:        "🔍 Bunday kodli kino topilmadi. Kodni tekshirib qayta yuboring.",
				ReplyMarkup: cancelKeyboard(),
			})
			return
		}
		h.logger.Error().Err(err).Str("code", code).Msg("Failed to look up movie for deletion")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	_ = h.sessions.Clear(ctx, msg.From.ID)

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text: fmt.Sprintf("🗑 <b>%s</b> (kod: <code>%s</code>, 👁 %d) o'chirilsinmi?\n\nBarcha baholari ham o'chadi.",
			movie.Title, movie.Code, movie.Views),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: movieDeleteConfirmKeyboard(movie.ID),
	})
}

// HandleConfirmDeleteMovie finalizes a movie deletion (confirm_delete_movie_<id>)
func (h *Handlers) HandleConfirmDeleteMovie(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}

	rest := strings.TrimPrefix(update.CallbackQuery.Data, "confirm_delete_movie_")
	movieID, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		answerCallback(ctx, b, update, "")
		return
	}

	if err := h.catalog.Delete(ctx, uint(movieID)); err != nil {
		if errors.Is(err, catalogerrors.ErrMovieNotFound) {
			answerCallback(ctx, b, update, "🔍 Kino allaqachon o'chirilgan.")
			return
		}
		h.logger.Error().Err(err).Uint64("movie_id", movieID).Msg("Failed to delete movie")
		answerCallback(ctx, b, update, "❌ Xatolik yuz berdi.")
		return
	}

	answerCallback(ctx, b, update, "✅ Kino o'chirildi.")

	if msg := update.CallbackQuery.Message.Message; msg != nil {
		_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
			ChatID:      msg.Chat.ID,
			MessageID:   msg.ID,
			Text:        "✅ Kino o'chirildi.",
			ReplyMarkup: backToAdminKeyboard(),
		})
	}
}

// HandleListMovies shows one page of the catalog (list_movies, list_movies_page_<n>)
func (h *Handlers) HandleListMovies(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	answerCallback(ctx, b, update, "")

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	page := 1
	if rest := strings.TrimPrefix(update.CallbackQuery.Data, "list_movies_page_"); rest != update.CallbackQuery.Data {
		if n, err := strconv.Atoi(rest); err == nil {
			page = n
		}
	}

	result, err := h.catalog.ListActive(ctx, page)
	if err != nil {
		h.logger.Error().Err(err).Int("page", page).Msg("Failed to list movies")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        formatMovieList(result.Movies, result.Page, result.TotalPages),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: movieListPagination(result.Page, result.TotalPages),
	})
}

func (h *Handlers) stepChannelAdd(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	msg := update.Message
	ref := strings.TrimSpace(msg.Text)

	channel, err := h.gateway.ResolveChannel(ctx, ref)
	if err != nil {
		h.logger.Warn().Err(err).Str("ref", ref).Msg("Failed to resolve channel")
		_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID:      msg.Chat.ID,
			Text:        "⚠️ Kanal topilmadi yoki bot u yerda admin emas. Tekshirib qayta yuboring.",
			ReplyMarkup: cancelKeyboard(),
		})
		return
	}

	if err := h.subs.AddChannel(ctx, channel); err != nil {
		if errors.Is(err, suberrors.ErrChannelAlreadyExists) {
			_ = h.sessions.Clear(ctx, msg.From.ID)
			_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
				ChatID:      msg.Chat.ID,
				Text:        "⚠️ Bu kanal allaqachon qo'shilgan.",
				ReplyMarkup: backToAdminKeyboard(),
			})
			return
		}
		h.logger.Error().Err(err).Int64("channel_id", channel.ChannelID).Msg("Failed to add channel")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	_ = h.sessions.Clear(ctx, msg.From.ID)

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        fmt.Sprintf("✅ Kanal qo'shildi: %s", channel.Title),
		ReplyMarkup: backToAdminKeyboard(),
	})
}

func (h *Handlers) stepChannelDelete(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	msg := update.Message
	ref := strings.TrimSpace(msg.Text)

	channel, err := h.subs.DeleteChannel(ctx, ref)
	if err != nil {
		if errors.Is(err, suberrors.ErrChannelNotFound) {
			_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
				ChatID:      msg.Chat.ID,
				Text:        "🔍 Bunday kanal topilmadi. Tekshirib qayta yuboring.",
				ReplyMarkup: cancelKeyboard(),
			})
			return
		}
		h.logger.Error().Err(err).Str("ref", ref).Msg("Failed to delete channel")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	_ = h.sessions.Clear(ctx, msg.From.ID)

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        fmt.Sprintf("✅ Kanal o'chirildi: %s", channel.Title),
		ReplyMarkup: backToAdminKeyboard(),
	})
}

// HandleListChannels shows every registered channel
func (h *Handlers) HandleListChannels(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	answerCallback(ctx, b, update, "")

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	channels, err := h.subs.ListChannels(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list channels")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	text := "📭 Hozircha kanallar yo'q."
	if len(channels) > 0 {
		var sb strings.Builder
		sb.WriteString("📃 <b>Kanallar ro'yxati</b>\n\n")
		for _, ch := range channels {
			status := "🔴"
			if ch.IsActive {
				status = "🟢"
			}
			if ch.Username != "" {
				fmt.Fprintf(&sb, "%s @%s (%d) — %s\n", status, ch.Username, ch.ChannelID, ch.Type)
			} else {
				fmt.Fprintf(&sb, "%s %s (%d) — %s\n", status, ch.Title, ch.ChannelID, ch.Type)
			}
		}
		text = sb.String()
	}

	_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: backToAdminKeyboard(),
	})
}

// HandleStats shows statistics for the requested period (stats_<period>)
func (h *Handlers) HandleStats(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	answerCallback(ctx, b, update, "")

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	var period statsentities.Period
	var title string
	switch update.CallbackQuery.Data {
	case "stats_daily":
		period, title = statsentities.PeriodDaily, "Bugungi statistika"
	case "stats_weekly":
		period, title = statsentities.PeriodWeekly, "Haftalik statistika"
	case "stats_monthly":
		period, title = statsentities.PeriodMonthly, "Oylik statistika"
	case "stats_total":
		period, title = statsentities.PeriodTotal, "Umumiy statistika"
	default:
		return
	}

	overview, err := h.stats.Overview(ctx, period)
	if err != nil {
		h.logger.Error().Err(err).Str("period", string(period)).Msg("Failed to load statistics")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        formatOverview(title, overview),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: statisticsMenu(),
	})
}

// HandleTopMovies shows the most viewed movies
func (h *Handlers) HandleTopMovies(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	answerCallback(ctx, b, update, "")

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	movies, err := h.catalog.TopByViews(ctx, topListLimit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load top movies")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        formatTopMovies(movies),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: statisticsMenu(),
	})
}

// HandleTopUsers shows the most active viewers
func (h *Handlers) HandleTopUsers(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	answerCallback(ctx, b, update, "")

	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	users, err := h.users.TopByWatched(ctx, topListLimit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load top users")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        formatTopUsers(users),
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: statisticsMenu(),
	})
}

func (h *Handlers) stepBroadcastPayload(ctx context.Context, b *tgbot.Bot, update *models.Update, sess *session.Session) {
	msg := update.Message

	sess.BroadcastChatID = msg.Chat.ID
	sess.BroadcastMessageID = msg.ID
	if err := h.sessions.Put(ctx, msg.From.ID, sess); err != nil {
		h.logger.Error().Err(err).Msg("Failed to store broadcast payload")
		h.sendError(ctx, b, msg.Chat.ID)
		return
	}

	_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "📨 Xabar barcha foydalanuvchilarga yuborilsinmi?",
		ReplyMarkup: broadcastConfirmMenu(),
	})
}

// HandleBroadcastConfirm starts the mass send and live-edits progress
func (h *Handlers) HandleBroadcastConfirm(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	answerCallback(ctx, b, update, "")

	identity := identityFrom(update)
	chatID := chatIDFrom(update)
	if identity == nil || chatID == 0 {
		return
	}

	sess, err := h.sessions.Get(ctx, identity.TgID)
	if err != nil || sess.BroadcastMessageID == 0 {
		_, _ = b.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text:   "⚠️ Yuboriladigan xabar topilmadi. Qaytadan boshlang.",
		})
		return
	}
	payload := broadcastentities.Payload{
		FromChatID: sess.BroadcastChatID,
		MessageID:  sess.BroadcastMessageID,
	}
	_ = h.sessions.Clear(ctx, identity.TgID)

	progress, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   "⏳ Yuborilmoqda...",
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to send broadcast progress message")
		return
	}

	onProgress := func(done, total int) {
		_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: progress.ID,
			Text:      fmt.Sprintf("⏳ Yuborilmoqda... %d/%d", done, total),
		})
	}

	result, err := h.broadcasts.Dispatch(ctx, payload, identity.TgID, onProgress)
	if err != nil {
		h.logger.Error().Err(err).Msg("Broadcast failed")
		_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: progress.ID,
			Text:      "❌ Xabar yuborishda xatolik yuz berdi.",
		})
		return
	}

	_, _ = b.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: progress.ID,
		Text: fmt.Sprintf("✅ Yuborish yakunlandi!\n\n📬 Yuborildi: %d\n❌ Xato: %d\n👥 Jami: %d",
			result.Sent, result.Failed, result.Total),
	})
}
