package telegram

import (
	"errors"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"

	broadcastentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/entities"
	subentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/entities"
)

func TestChatRef(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"-1001234567890", int64(-1001234567890)},
		{"@kinamax_channel", "@kinamax_channel"},
		{"kinamax_channel", "@kinamax_channel"},
		{"  @spaced  ", "@spaced"},
		{"42", int64(42)},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, chatRef(tt.in), "ref %q", tt.in)
	}
}

func TestCopyParams(t *testing.T) {
	params := copyParams(42, broadcastentities.Payload{FromChatID: -1001234567890, MessageID: 7})

	require.Equal(t, int64(42), params.ChatID)
	require.Equal(t, "-1001234567890", params.FromChatID)
	require.Equal(t, 7, params.MessageID)
}

func TestMemberStatusSatisfies(t *testing.T) {
	tests := []struct {
		status models.ChatMemberType
		want   bool
	}{
		{models.ChatMemberTypeOwner, true},
		{models.ChatMemberTypeAdministrator, true},
		{models.ChatMemberTypeMember, true},
		{models.ChatMemberTypeRestricted, false},
		{models.ChatMemberTypeLeft, false},
		{models.ChatMemberTypeBanned, false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, memberStatusSatisfies(tt.status), "status %v", tt.status)
	}
}

func TestUnreachableRecipient(t *testing.T) {
	require.True(t, unreachableRecipient(errors.New("forbidden: bot was blocked by the user")))
	require.True(t, unreachableRecipient(errors.New("Forbidden: user is deactivated")))
	require.True(t, unreachableRecipient(errors.New("Bad Request: chat not found")))
	require.False(t, unreachableRecipient(errors.New("Too Many Requests: retry after 5")))
}

func TestSubscriptionKeyboard(t *testing.T) {
	channels := []subentities.Channel{
		{Title: "Linked", InviteLink: "https://t.me/+abc"},
		{Title: "Named", Username: "named_channel"},
		{Title: "Unreachable"}, // no link and no username, cannot be joined by button
	}

	kb := subscriptionKeyboard(channels)

	// one row per joinable channel plus the recheck row
	require.Len(t, kb.InlineKeyboard, 3)
	require.Equal(t, "https://t.me/+abc", kb.InlineKeyboard[0][0].URL)
	require.Equal(t, "https://t.me/named_channel", kb.InlineKeyboard[1][0].URL)
	require.Equal(t, "check_subscription", kb.InlineKeyboard[2][0].CallbackData)
}

func TestRatingKeyboardCallbacks(t *testing.T) {
	kb := ratingKeyboard(77)

	require.Equal(t, "rate_like_77", kb.InlineKeyboard[0][0].CallbackData)
	require.Equal(t, "rate_dislike_77", kb.InlineKeyboard[0][1].CallbackData)
	require.Len(t, kb.InlineKeyboard[1], 5)
	require.Equal(t, "star_1_77", kb.InlineKeyboard[1][0].CallbackData)
	require.Equal(t, "star_5_77", kb.InlineKeyboard[1][4].CallbackData)
}
