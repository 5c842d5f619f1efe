package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

const defaultProduceTimeout = 5 * time.Second

// KafkaPublisher produces events synchronously to a single topic
type KafkaPublisher struct {
	client  *kgo.Client
	topic   string
	timeout time.Duration
}

// NewKafkaPublisher connects a producer to the given brokers
func NewKafkaPublisher(brokers []string, topic string, timeout time.Duration) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	if timeout <= 0 {
		timeout = defaultProduceTimeout
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	return &KafkaPublisher{client: client, topic: topic, timeout: timeout}, nil
}

// Publish implements Publisher
func (p *KafkaPublisher) Publish(ctx context.Context, event RegistrationEvent) error {
	payload, err := event.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.ID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	record := &kgo.Record{
		Topic: p.topic,
		Key:   event.Key(),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("failed to produce event %s to %s: %w", event.ID, p.topic, err)
	}
	return nil
}

// Close flushes and closes the producer
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
