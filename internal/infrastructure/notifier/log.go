package notifier

import (
	"context"
	"log/slog"
)

type logPublisher struct {
	log *slog.Logger
}

// NewLog returns a notifier that only writes events to the log.
func NewLog(log *slog.Logger) *Notifier {
	return newNotifier(log, &logPublisher{log: log})
}

func (p *logPublisher) publish(ctx context.Context, eventType string, body []byte) error {
	p.log.InfoContext(ctx, "pipeline event",
		slog.String("type", eventType),
		slog.String("body", string(body)))
	return nil
}

func (p *logPublisher) close() error {
	return nil
}
