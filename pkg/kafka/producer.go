package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the producer uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Producer publishes catalog events to a single topic. The routing key
// becomes the message key and is repeated in the "event" header.
type Producer struct {
	writer Writer
}

// NewProducer creates a Producer writing to topic on broker.
func NewProducer(broker, topic string) *Producer {
	w := &skafka.Writer{
		Addr:         skafka.TCP(broker),
		Topic:        topic,
		Balancer:     &skafka.LeastBytes{},
		RequiredAcks: skafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	log.Printf("Kafka producer ready for topic %s on %s", topic, broker)
	return &Producer{writer: w}
}

// NewProducerWithWriter creates a Producer around an existing writer.
func NewProducerWithWriter(w Writer) *Producer {
	return &Producer{writer: w}
}

// Publish marshals payload to JSON and writes it keyed by routingKey.
func (p *Producer) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", routingKey, err)
	}

	msg := skafka.Message{
		Key:     []byte(routingKey),
		Value:   body,
		Headers: []skafka.Header{{Key: "event", Value: []byte(routingKey)}},
		Time:    time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write %s event: %w", routingKey, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
