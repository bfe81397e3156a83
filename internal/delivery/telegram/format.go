package telegram

import (
	"fmt"
	"html"
	"strings"

	catalogentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	statsentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/stats/entities"
	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

func formatMovieCaption(movie *catalogentities.Movie) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎬 <b>%s</b>\n\n", html.EscapeString(movie.Title))
	if movie.Description != "" {
		fmt.Fprintf(&b, "📝 %s\n\n", html.EscapeString(movie.Description))
	}
	fmt.Fprintf(&b, "🔢 Kod: <code>%s</code>\n", movie.Code)
	fmt.Fprintf(&b, "👁 Ko'rishlar: %d\n", movie.Views)
	fmt.Fprintf(&b, "👍 %d  |  👎 %d", movie.Likes, movie.Dislikes)

	return b.String()
}

func formatProfile(u *userentities.User) string {
	name := html.EscapeString(u.FirstName)
	if name == "" {
		name = "Foydalanuvchi"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👤 <b>%s</b>\n\n", name)
	if u.Username != "" {
		fmt.Fprintf(&b, "🔗 @%s\n", html.EscapeString(u.Username))
	}
	fmt.Fprintf(&b, "🎬 Ko'rilgan kinolar: %d\n", u.WatchedMovies)
	fmt.Fprintf(&b, "⭐️ Berilgan baholar: %d\n", u.TotalRatings)
	fmt.Fprintf(&b, "📅 Ro'yxatdan o'tgan: %s", u.JoinedAt.Format("02.01.2006"))

	return b.String()
}

func formatOverview(title string, ov *statsentities.Overview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 <b>%s</b>\n\n", title)
	fmt.Fprintf(&b, "👥 Yangi foydalanuvchilar: %d\n", ov.NewUsers)
	fmt.Fprintf(&b, "👥 Jami foydalanuvchilar: %d\n", ov.TotalUsers)
	fmt.Fprintf(&b, "🎬 Kinolar: %d\n", ov.TotalMovies)
	fmt.Fprintf(&b, "👁 Ko'rishlar: %d\n", ov.TotalViews)
	fmt.Fprintf(&b, "⭐️ Baholar: %d", ov.TotalRatings)

	return b.String()
}

func formatMovieList(movies []catalogentities.Movie, page, totalPages int) string {
	if len(movies) == 0 {
		return "📭 Hozircha kinolar yo'q."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📃 <b>Kinolar ro'yxati</b> (%d/%d)\n\n", page, totalPages)
	for _, m := range movies {
		fmt.Fprintf(&b, "<code>%s</code> — %s (👁 %d)\n", m.Code, html.EscapeString(m.Title), m.Views)
	}

	return b.String()
}

func formatTopMovies(movies []catalogentities.Movie) string {
	if len(movies) == 0 {
		return "📭 Hozircha kinolar yo'q."
	}

	var b strings.Builder
	b.WriteString("🏆 <b>Top kinolar</b>\n\n")
	for i, m := range movies {
		fmt.Fprintf(&b, "%d. %s — 👁 %d (👍 %d)\n", i+1, html.EscapeString(m.Title), m.Views, m.Likes)
	}

	return b.String()
}

func formatTopUsers(users []userentities.User) string {
	if len(users) == 0 {
		return "📭 Hozircha foydalanuvchilar yo'q."
	}

	var b strings.Builder
	b.WriteString("👥 <b>Top foydalanuvchilar</b>\n\n")
	for i, u := range users {
		name := html.EscapeString(u.FirstName)
		if u.Username != "" {
			name = "@" + html.EscapeString(u.Username)
		}
		fmt.Fprintf(&b, "%d. %s — 🎬 %d\n", i+1, name, u.WatchedMovies)
	}

	return b.String()
}
