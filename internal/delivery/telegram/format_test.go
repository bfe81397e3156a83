package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	catalogentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/catalog/entities"
	userentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/entities"
)

func TestFormatMovieCaption(t *testing.T) {
	movie := &catalogentities.Movie{
		Code:        "1234",
		Title:       "Alien <Director's Cut>",
		Description: "Sci-fi & horror",
		Views:       15,
		Likes:       3,
		Dislikes:    1,
	}

	caption := formatMovieCaption(movie)

	require.Contains(t, caption, "<code>1234</code>")
	require.Contains(t, caption, "Alien &lt;Director&#39;s Cut&gt;", "HTML must be escaped")
	require.Contains(t, caption, "Sci-fi &amp; horror")
	require.Contains(t, caption, "👍 3")
	require.Contains(t, caption, "👎 1")
}

func TestFormatMovieCaption_SkipsEmptyDescription(t *testing.T) {
	caption := formatMovieCaption(&catalogentities.Movie{Code: "1234", Title: "Bare"})
	require.NotContains(t, caption, "📝")
}

func TestFormatProfile(t *testing.T) {
	user := &userentities.User{
		FirstName:     "Ali",
		Username:      "ali_dev",
		WatchedMovies: 12,
		TotalRatings:  4,
		JoinedAt:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	profile := formatProfile(user)

	require.Contains(t, profile, "Ali")
	require.Contains(t, profile, "@ali_dev")
	require.Contains(t, profile, "12")
	require.Contains(t, profile, "01.03.2025")
}

func TestFormatMovieList_Empty(t *testing.T) {
	text := formatMovieList(nil, 1, 0)
	require.False(t, strings.Contains(text, "ro'yxati"))
}
