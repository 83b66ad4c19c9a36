package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/coastwatch/threat-aggregation-service/internal/domain"
)

// Publisher hands authority recommendations off to the notification
// dispatcher over Kafka.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the recommendation topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish serializes and writes all recommendations in a single
// WriteMessages call. Messages are keyed by threat ID so repeated
// recommendations for the same threat land in one partition.
func (p *Publisher) Publish(ctx context.Context, recs []domain.AuthorityRecommendation) error {
	if len(recs) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(recs))
	for i := range recs {
		msg, err := serializeToMessage(recs[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish recommendations: %w", err)
	}
	p.logger.Info("published authority recommendations", "count", len(recs))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a recommendation into a Kafka message.
func serializeToMessage(rec domain.AuthorityRecommendation) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize recommendation: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(rec.ThreatID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "authority_type", Value: []byte(rec.Authority)},
			{Key: "urgency", Value: []byte(rec.Urgency)},
		},
	}, nil
}
