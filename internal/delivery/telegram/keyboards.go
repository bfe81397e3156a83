package telegram

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	subentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/entities"
)

func subscriptionKeyboard(channels []subentities.Channel) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	for _, ch := range channels {
		url := ch.InviteLink
		if url == "" && ch.Username != "" {
			url = "https://t.me/" + ch.Username
		}
		if url == "" {
			continue
		}
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: "📢 " + ch.Title, URL: url},
		})
	}

	rows = append(rows, []models.InlineKeyboardButton{
		{Text: "✅ Tekshirish", CallbackData: "check_subscription"},
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func ratingKeyboard(movieID uint) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "👍 Yoqdi", CallbackData: fmt.Sprintf("rate_like_%d", movieID)},
				{Text: "👎 Yoqmadi", CallbackData: fmt.Sprintf("rate_dislike_%d", movieID)},
			},
			{
				{Text: "⭐️", CallbackData: fmt.Sprintf("star_1_%d", movieID)},
				{Text: "⭐️⭐️", CallbackData: fmt.Sprintf("star_2_%d", movieID)},
				{Text: "⭐️⭐️⭐️", CallbackData: fmt.Sprintf("star_3_%d", movieID)},
				{Text: "⭐️⭐️⭐️⭐️", CallbackData: fmt.Sprintf("star_4_%d", movieID)},
				{Text: "⭐️⭐️⭐️⭐️⭐️", CallbackData: fmt.Sprintf("star_5_%d", movieID)},
			},
			{
				{Text: "🔍 Yana qidirish", CallbackData: "search_again"},
			},
		},
	}
}

func ratingThanksKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "✅ Baholandi", CallbackData: "close"},
				{Text: "🔍 Yana qidirish", CallbackData: "search_again"},
			},
		},
	}
}

func adminMainMenu() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "🎬 Kino boshqaruvi", CallbackData: "admin_movies"}},
			{{Text: "📢 Kanal boshqaruvi", CallbackData: "admin_channels"}},
			{{Text: "📊 Statistika", CallbackData: "admin_stats"}},
			{{Text: "📨 Xabar yuborish", CallbackData: "admin_broadcast"}},
		},
	}
}

func movieManagementMenu() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "➕ Kino qo'shish", CallbackData: "add_movie"},
				{Text: "🗑 Kino o'chirish", CallbackData: "delete_movie"},
			},
			{{Text: "📃 Barcha kinolar", CallbackData: "list_movies"}},
			{{Text: "⬅️ Orqaga", CallbackData: "back_to_admin"}},
		},
	}
}

func channelManagementMenu() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "➕ Kanal qo'shish", CallbackData: "add_channel"},
				{Text: "🗑 Kanal o'chirish", CallbackData: "delete_channel"},
			},
			{{Text: "📃 Barcha kanallar", CallbackData: "list_channels"}},
			{{Text: "⬅️ Orqaga", CallbackData: "back_to_admin"}},
		},
	}
}

func statisticsMenu() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "📅 Bugun", CallbackData: "stats_daily"},
				{Text: "📅 Hafta", CallbackData: "stats_weekly"},
			},
			{
				{Text: "📅 Oy", CallbackData: "stats_monthly"},
				{Text: "📊 Umumiy", CallbackData: "stats_total"},
			},
			{
				{Text: "🏆 Top kinolar", CallbackData: "top_movies"},
				{Text: "👥 Top foydalanuvchilar", CallbackData: "top_users"},
			},
			{{Text: "⬅️ Orqaga", CallbackData: "back_to_admin"}},
		},
	}
}

func broadcastConfirmMenu() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "✅ Yuborish", CallbackData: "broadcast_confirm"},
				{Text: "❌ Bekor qilish", CallbackData: "cancel"},
			},
		},
	}
}

func movieDeleteConfirmKeyboard(movieID uint) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "✅ Ha, o'chirish", CallbackData: fmt.Sprintf("confirm_delete_movie_%d", movieID)},
				{Text: "❌ Bekor qilish", CallbackData: "cancel"},
			},
		},
	}
}

func movieListPagination(page, totalPages int) *models.InlineKeyboardMarkup {
	var row []models.InlineKeyboardButton
	if page > 1 {
		row = append(row, models.InlineKeyboardButton{
			Text: "⬅️", CallbackData: fmt.Sprintf("list_movies_page_%d", page-1),
		})
	}
	if page < totalPages {
		row = append(row, models.InlineKeyboardButton{
			Text: "➡️", CallbackData: fmt.Sprintf("list_movies_page_%d", page+1),
		})
	}

	rows := [][]models.InlineKeyboardButton{}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []models.InlineKeyboardButton{
		{Text: "⬅️ Orqaga", CallbackData: "admin_movies"},
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func cancelKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "❌ Bekor qilish", CallbackData: "cancel"}},
		},
	}
}

func backToAdminKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "⬅️ Orqaga", CallbackData: "back_to_admin"}},
		},
	}
}
