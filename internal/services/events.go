package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-craft-gallery/internal/logger"
	"github.com/sbilibin2017/gw-craft-gallery/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// newEvent stamps a gallery event with a fresh id and the current time.
func newEvent(eventType, kind, resourceID string, actor models.UserID) models.Event {
	return models.Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		ResourceID: resourceID,
		Kind:       kind,
		UserID:     actor.String(),
		Timestamp:  time.Now().Unix(),
	}
}

// publishEvent publishes a gallery event to Kafka. Failures are logged and never fail the caller.
func publishEvent(ctx context.Context, writer KafkaWriter, event models.Event) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_type", event.Type, "resource_id", event.ResourceID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ResourceID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "event_type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "event_type", event.Type, "resource_id", event.ResourceID)
	}
}

// CommitScheduler defers fn until the transaction carried by ctx commits.
type CommitScheduler func(ctx context.Context, fn func())

type txKafkaWriter struct {
	KafkaWriter
	afterCommit CommitScheduler
}

// NewTxKafkaWriter wraps writer so that messages written during a request transaction
// are sent only once it commits. Send failures are logged.
func NewTxKafkaWriter(writer KafkaWriter, afterCommit CommitScheduler) KafkaWriter {
	return &txKafkaWriter{KafkaWriter: writer, afterCommit: afterCommit}
}

func (w *txKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.afterCommit(ctx, func() {
		if err := w.KafkaWriter.WriteMessages(context.WithoutCancel(ctx), msgs...); err != nil {
			logger.Log.Errorw("Failed to publish committed events to Kafka", "count", len(msgs), "error", err)
		}
	})
	return nil
}
