package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

type natsPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATS publishes envelopes to "<subject>.<event type>".
func NewNATS(log *slog.Logger, url, subject string) (*Notifier, error) {
	conn, err := nats.Connect(url,
		nats.Name("egrid_loader"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", slog.String("err", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	return newNotifier(log, &natsPublisher{conn: conn, subject: subject}), nil
}

func (p *natsPublisher) publish(_ context.Context, eventType string, body []byte) error {
	return p.conn.Publish(p.subject+"."+eventType, body)
}

func (p *natsPublisher) close() error {
	return p.conn.Drain()
}
