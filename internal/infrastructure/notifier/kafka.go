package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Shopify/sarama"
)

type kafkaPublisher struct {
	log      *slog.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewKafka(log *slog.Logger, brokers []string, topic string) (*Notifier, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = "egrid_loader"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return newKafka(log, producer, topic), nil
}

func newKafka(log *slog.Logger, producer sarama.SyncProducer, topic string) *Notifier {
	return newNotifier(log, &kafkaPublisher{log: log, producer: producer, topic: topic})
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, body []byte) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(eventType),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		return err
	}

	p.log.DebugContext(ctx, "kafka message produced",
		slog.String("topic", p.topic),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset))

	return nil
}

func (p *kafkaPublisher) close() error {
	return p.producer.Close()
}
