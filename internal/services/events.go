package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes an audit event. Publication is best effort: the
// request that produced the event has already succeeded, so failures are
// logged and swallowed.
func publishEvent(ctx context.Context, w EventWriter, userID, kind, subject string) {
	if w == nil {
		logger.Log.Warnw("event writer not configured, skipping publishing", "kind", kind, "user_id", userID)
		return
	}

	ev := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Kind:      kind,
		Subject:   subject,
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "kind", kind, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "kind", kind, "user_id", userID, "error", err)
	} else {
		logger.Log.Infow("event published", "kind", kind, "user_id", userID, "subject", subject)
	}
}
