package kafka

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/muhammadrizo00/Kinamax-Pro/config"
)

var Module = fx.Module(
	"kafka",
	fx.Provide(provideEvents),
)

// provideEvents builds the event publisher. Without configured brokers the
// publisher is a no-op so the bot runs without a Kafka cluster.
func provideEvents(lc fx.Lifecycle, cfg *config.KafkaConfig, log zerolog.Logger) (*Events, error) {
	if len(cfg.Brokers) == 0 {
		log.Info().Msg("kafka brokers not configured, analytics events disabled")
		return NewEvents(nil), nil
	}

	producer, err := NewProducer(cfg.Brokers, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("closing kafka producer...")
			return producer.Close()
		},
	})

	return NewEvents(producer), nil
}
