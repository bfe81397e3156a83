// Package telegram is the delivery layer: update routing, handlers,
// keyboards and the gateway adapters the domain layer depends on.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/muhammadrizo00/Kinamax-Pro/config"
	broadcastentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/broadcast/entities"
	subentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/entities"
	userdeps "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/user/deps"
)

// Gateway adapts the raw bot API to the interfaces the domain layer
// declares: membership checks for the subscription gate and message
// delivery for broadcasts. It also relays uploaded videos into the
// storage channel so file ids survive bot token rotation.
//
// The bot is bound after construction: handlers need the gateway and
// the bot needs the handlers, so the gateway starts detached and Bind
// closes the loop before the bot begins polling.
type Gateway struct {
	bot    *tgbot.Bot
	cfg    *config.BotConfig
	users  userdeps.UserUseCase
	logger zerolog.Logger
}

func NewGateway(cfg *config.BotConfig, users userdeps.UserUseCase, logger zerolog.Logger) *Gateway {
	return &Gateway{
		cfg:    cfg,
		users:  users,
		logger: logger.With().Str("component", "gateway").Logger(),
	}
}

// Bind attaches the constructed bot. Must happen before any update is
// processed.
func (g *Gateway) Bind(bot *tgbot.Bot) {
	g.bot = bot
}

// IsMember reports whether the user currently belongs to the channel.
// Only owner, administrator and member statuses satisfy the gate;
// restricted users must re-join before they count.
func (g *Gateway) IsMember(ctx context.Context, channelID int64, userID int64) (bool, error) {
	cm, err := g.bot.GetChatMember(ctx, &tgbot.GetChatMemberParams{
		ChatID: channelID,
		UserID: userID,
	})
	if err != nil {
		return false, fmt.Errorf("get chat member: %w", err)
	}

	return memberStatusSatisfies(cm.Type), nil
}

func memberStatusSatisfies(t models.ChatMemberType) bool {
	switch t {
	case models.ChatMemberTypeOwner, models.ChatMemberTypeAdministrator, models.ChatMemberTypeMember:
		return true
	default:
		return false
	}
}

// Send copies the broadcast payload to one recipient, preserving the
// original media without revealing the source chat. A recipient that has
// blocked the bot or deleted their account is flagged so the next run
// skips them.
func (g *Gateway) Send(ctx context.Context, recipientTgID int64, payload broadcastentities.Payload) error {
	_, err := g.bot.CopyMessage(ctx, copyParams(recipientTgID, payload))
	if err != nil {
		if unreachableRecipient(err) {
			if blockErr := g.users.SetBlocked(ctx, recipientTgID, true); blockErr != nil {
				g.logger.Warn().Err(blockErr).Int64("recipient", recipientTgID).Msg("Failed to flag unreachable recipient")
			}
		}
		return fmt.Errorf("copy message to %d: %w", recipientTgID, err)
	}
	return nil
}

// copyParams builds the copy request; the source chat id travels as a
// decimal string on the wire.
func copyParams(recipientTgID int64, payload broadcastentities.Payload) *tgbot.CopyMessageParams {
	return &tgbot.CopyMessageParams{
		ChatID:     recipientTgID,
		FromChatID: strconv.FormatInt(payload.FromChatID, 10),
		MessageID:  payload.MessageID,
	}
}

func unreachableRecipient(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bot was blocked by the user") ||
		strings.Contains(msg, "user is deactivated") ||
		strings.Contains(msg, "chat not found")
}

// Relay forwards an uploaded video into the storage channel and returns
// the channel-side file id and message id. Without a configured storage
// channel the original file id is used as-is.
func (g *Gateway) Relay(ctx context.Context, fileID string) (string, int, error) {
	if g.cfg.StorageChannelID == 0 {
		return fileID, 0, nil
	}

	msg, err := g.bot.SendVideo(ctx, &tgbot.SendVideoParams{
		ChatID: g.cfg.StorageChannelID,
		Video:  &models.InputFileString{Data: fileID},
	})
	if err != nil {
		return "", 0, fmt.Errorf("relay to storage channel: %w", err)
	}

	channelFileID := fileID
	if msg.Video != nil {
		channelFileID = msg.Video.FileID
	}
	return channelFileID, msg.ID, nil
}

// ResolveChannel looks up a channel by @username or numeric id and
// verifies the bot is an administrator there, which the membership
// check requires.
func (g *Gateway) ResolveChannel(ctx context.Context, ref string) (*subentities.Channel, error) {
	chat, err := g.bot.GetChat(ctx, &tgbot.GetChatParams{ChatID: chatRef(ref)})
	if err != nil {
		return nil, fmt.Errorf("get chat %q: %w", ref, err)
	}

	me, err := g.bot.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("get me: %w", err)
	}

	cm, err := g.bot.GetChatMember(ctx, &tgbot.GetChatMemberParams{
		ChatID: chat.ID,
		UserID: me.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("get bot membership in %d: %w", chat.ID, err)
	}
	if cm.Type != models.ChatMemberTypeAdministrator && cm.Type != models.ChatMemberTypeOwner {
		return nil, fmt.Errorf("bot is not an administrator of %q", ref)
	}

	return &subentities.Channel{
		ChannelID:  chat.ID,
		Type:       subentities.ChannelTypeMandatory,
		Title:      chat.Title,
		Username:   chat.Username,
		InviteLink: chat.InviteLink,
		IsActive:   true,
	}, nil
}

// chatRef turns a user-typed channel reference into a bot API chat id:
// numeric ids pass through, anything else becomes an @username.
func chatRef(ref string) any {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return id
	}
	if !strings.HasPrefix(ref, "@") {
		ref = "@" + ref
	}
	return ref
}
