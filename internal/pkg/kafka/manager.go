package kafka

import (
	"Stride/internal/api/config"
	"Stride/internal/pkg/es"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager owns the CDC consumer groups.
type ConsumerManager struct {
	usersConsumer sarama.ConsumerGroup
	usersHandler  sarama.ConsumerGroupHandler

	userFollowsConsumer sarama.ConsumerGroup
	userFollowsHandler  sarama.ConsumerGroupHandler

	activityConsumer sarama.ConsumerGroup
	activityHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, userESRepo es.UserRepo) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	usersConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaUserConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	usersHandler := NewUsersHandler(userESRepo)

	userFollowsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaUserFollowsConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	userFollowsHandler := NewUserFollowsHandler()

	activityConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaActivityConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	activityHandler := NewActivityHandler()

	return &ConsumerManager{
		usersConsumer:       usersConsumer,
		usersHandler:        usersHandler,
		userFollowsConsumer: userFollowsConsumer,
		userFollowsHandler:  userFollowsHandler,
		activityConsumer:    activityConsumer,
		activityHandler:     activityHandler,
	}, nil
}

// Start runs all consumers until ctx is cancelled.
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaUserConsumer.Topic
		log.Info("Users consumer started", "topic", topic)
		for {
			if err := m.usersConsumer.Consume(ctx, []string{topic}, m.usersHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		topic := cfg.KafkaUserFollowsConsumer.Topic
		log.Info("User Follows consumer started", "topic", topic)
		for {
			if err := m.userFollowsConsumer.Consume(ctx, []string{topic}, m.userFollowsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		topic := cfg.KafkaActivityConsumer.Topic
		log.Info("Activity consumer started", "topic", topic)
		for {
			if err := m.activityConsumer.Consume(ctx, []string{topic}, m.activityHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.usersConsumer.Close(); err != nil {
		log.Error("Failed to close users consumer", "err", err)
	}
	if err := m.userFollowsConsumer.Close(); err != nil {
		log.Error("Failed to close user follows consumer", "err", err)
	}
	if err := m.activityConsumer.Close(); err != nil {
		log.Error("Failed to close activity consumer", "err", err)
	}

	return nil
}
