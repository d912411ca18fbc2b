package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"bookstore/internal/application/checkout/usecases"
	"bookstore/internal/shared/config"
	"bookstore/internal/shared/logger"
)

// KafkaOrderPublisher emits order-settled events to a Kafka topic. Messages
// are keyed by order number so one order's events stay ordered within a
// partition.
type KafkaOrderPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logger.Interface
}

func NewKafkaOrderPublisher(cfg config.KafkaConfig, log logger.Interface) (*KafkaOrderPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Retry.Max = 3
	saramaCfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaOrderPublisher{
		producer: producer,
		topic:    cfg.Topic,
		logger:   log.Named("kafka-publisher"),
	}, nil
}

func (p *KafkaOrderPublisher) PublishOrderSettled(ctx context.Context, event usecases.OrderSettledEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order settled event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderNo),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to publish order settled event: %w", err)
	}

	p.logger.Debugw("order settled event published",
		"order_no", event.OrderNo,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *KafkaOrderPublisher) Close() error {
	return p.producer.Close()
}
