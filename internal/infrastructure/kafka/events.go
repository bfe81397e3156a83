package kafka

import (
	"context"
	"strconv"
	"time"
)

// Topics for the analytics event stream
const (
	TopicMovieCreated       = "kinamax.movie.created"
	TopicRatingCreated      = "kinamax.rating.created"
	TopicBroadcastCompleted = "kinamax.broadcast.completed"
)

// Events publishes domain events to Kafka. With a nil producer (brokers not
// configured) every method is a no-op, so usecases can publish
// unconditionally.
type Events struct {
	producer *Producer
}

func NewEvents(producer *Producer) *Events {
	return &Events{producer: producer}
}

type movieCreatedEvent struct {
	MovieID   uint      `json:"movie_id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type ratingCreatedEvent struct {
	MovieID   uint      `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	Kind      string    `json:"kind"`
	Stars     int       `json:"stars,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type broadcastCompletedEvent struct {
	BroadcastID uint      `json:"broadcast_id"`
	Sent        int       `json:"sent"`
	Failed      int       `json:"failed"`
	Total       int       `json:"total"`
	CreatedBy   int64     `json:"created_by"`
	CompletedAt time.Time `json:"completed_at"`
}

func (e *Events) MovieCreated(ctx context.Context, movieID uint, code, title string, createdBy int64) error {
	if e.producer == nil {
		return nil
	}
	return e.producer.SendToTopic(ctx, TopicMovieCreated, code, movieCreatedEvent{
		MovieID:   movieID,
		Code:      code,
		Title:     title,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	})
}

func (e *Events) RatingCreated(ctx context.Context, movieID uint, userID int64, kind string, stars int) error {
	if e.producer == nil {
		return nil
	}
	key := strconv.FormatUint(uint64(movieID), 10)
	return e.producer.SendToTopic(ctx, TopicRatingCreated, key, ratingCreatedEvent{
		MovieID:   movieID,
		UserID:    userID,
		Kind:      kind,
		Stars:     stars,
		CreatedAt: time.Now().UTC(),
	})
}

func (e *Events) BroadcastCompleted(ctx context.Context, broadcastID uint, sent, failed, total int, createdBy int64) error {
	if e.producer == nil {
		return nil
	}
	key := strconv.FormatUint(uint64(broadcastID), 10)
	return e.producer.SendToTopic(ctx, TopicBroadcastCompleted, key, broadcastCompletedEvent{
		BroadcastID: broadcastID,
		Sent:        sent,
		Failed:      failed,
		Total:       total,
		CreatedBy:   createdBy,
		CompletedAt: time.Now().UTC(),
	})
}
