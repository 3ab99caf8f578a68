package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/egrid_loader/internal/config"
)

const Source = "data_processing_pipeline"

const (
	BackendLog   = "log"
	BackendNATS  = "nats"
	BackendKafka = "kafka"
)

var ErrUnknownBackend = errors.New("unknown notifier backend")

type Envelope struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp string         `json:"timestamp"`
	Source    string         `json:"source"`
}

func NewEnvelope(eventType string, payload map[string]any, now time.Time) Envelope {
	if payload == nil {
		payload = map[string]any{}
	}

	return Envelope{
		Type:      eventType,
		Data:      payload,
		Timestamp: now.Format(time.RFC3339Nano),
		Source:    Source,
	}
}

type publisher interface {
	publish(ctx context.Context, eventType string, body []byte) error
	close() error
}

// Notifier wraps every event into an Envelope and hands it to a backend.
type Notifier struct {
	log       *slog.Logger
	publisher publisher
	now       func() time.Time
}

func newNotifier(log *slog.Logger, p publisher) *Notifier {
	return &Notifier{
		log:       log,
		publisher: p,
		now:       time.Now,
	}
}

func (n *Notifier) Send(ctx context.Context, eventType string, payload map[string]any) error {
	body, err := json.Marshal(NewEnvelope(eventType, payload, n.now()))
	if err != nil {
		return fmt.Errorf("failed to marshal %s notification: %w", eventType, err)
	}

	if err := n.publisher.publish(ctx, eventType, body); err != nil {
		return fmt.Errorf("failed to publish %s notification: %w", eventType, err)
	}

	n.log.InfoContext(ctx, "notification sent", slog.String("type", eventType))

	return nil
}

func (n *Notifier) Close() error {
	return n.publisher.close()
}

// New builds the notifier selected by cfg.Backend.
func New(log *slog.Logger, cfg config.Notifier) (*Notifier, error) {
	switch cfg.Backend {
	case BackendLog, "":
		return NewLog(log), nil
	case BackendNATS:
		return NewNATS(log, cfg.NATSURL, cfg.NATSSubject)
	case BackendKafka:
		return NewKafka(log, cfg.KafkaBrokers, cfg.KafkaTopic)
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Backend, ErrUnknownBackend)
	}
}
