package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// Producer publishes analytics events to Kafka.
type Producer struct {
	producer sarama.SyncProducer
	logger   zerolog.Logger
}

func NewProducer(brokers []string, logger zerolog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 500 * time.Millisecond
	config.Producer.Timeout = 10 * time.Second
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create Kafka SyncProducer")
		return nil, err
	}

	logger.Info().Msg("Kafka SyncProducer initialized")

	return &Producer{
		producer: producer,
		logger:   logger,
	}, nil
}

func (p *Producer) Close() error {
	if p.producer == nil {
		return nil
	}

	if err := p.producer.Close(); err != nil {
		p.logger.Error().Err(err).Msg("failed to close Kafka producer")
		return err
	}

	p.logger.Info().Msg("Kafka producer closed")
	return nil
}

// SendToTopic sends any event to a specific topic as JSON
func (p *Producer) SendToTopic(ctx context.Context, topic string, key string, event any) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error().Err(err).Str("topic", topic).Msg("failed to marshal event")
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(bytes),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("failed to send event to kafka")
		return err
	}

	p.logger.Debug().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("event sent to kafka")

	return nil
}
