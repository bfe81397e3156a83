// Package session stores per-user admin dialog state: the current step of a
// multi-message flow (add movie, add channel, broadcast) plus the partial
// input collected so far. Sessions are discarded on completion or /cancel.
package session

import (
	"context"
	"time"
)

// State is a step in an admin dialog
type State string

const (
	StateIdle                     State = "idle"
	StateAwaitingContent          State = "awaiting_content"
	StateAwaitingTitle            State = "awaiting_title"
	StateAwaitingDescription      State = "awaiting_description"
	StateAwaitingChannelID        State = "awaiting_channel_id"
	StateAwaitingChannelDelete    State = "awaiting_channel_delete"
	StateAwaitingMovieDelete      State = "awaiting_movie_delete"
	StateAwaitingBroadcastPayload State = "awaiting_broadcast_payload"
)

// SessionTTL bounds how long an abandoned dialog survives
const SessionTTL = time.Hour

// Session is the accumulated partial input of one admin dialog
type Session struct {
	State              State  `json:"state"`
	FileID             string `json:"file_id,omitempty"`
	ChannelMessageID   int    `json:"channel_message_id,omitempty"`
	Title              string `json:"title,omitempty"`
	Description        string `json:"description,omitempty"`
	BroadcastChatID    int64  `json:"broadcast_chat_id,omitempty"`
	BroadcastMessageID int    `json:"broadcast_message_id,omitempty"`
}

// Store persists dialog sessions keyed by Telegram user id.
// Get returns an idle session when none is stored.
type Store interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Put(ctx context.Context, userID int64, s *Session) error
	Clear(ctx context.Context, userID int64) error
}
