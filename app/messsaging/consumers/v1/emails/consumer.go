// Package emails consumes the email job topic.
package emails

import (
	"context"
	"encoding/json"

	"github.com/ribgsilva/note-service/business/v1/email"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Handler runs the job carried by one event
type Handler interface {
	Handle(ctx context.Context, e email.Event) error
}

// Consume receives messages until ctx is done, running at most maxWorkers
// jobs at a time. A message is acked only when its job succeeded, failed
// jobs are nacked so the broker delivers them again.
func Consume(ctx context.Context, log *zap.SugaredLogger, sub *pubsub.Subscription, maxWorkers int, h Handler) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan struct{}, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			handle(ctx, log, m, h)
		}(message)
	}

	// wait for the running jobs
	for w := 0; w < maxWorkers; w++ {
		workers <- struct{}{}
	}

	// cancelling ctx is how the consumer is stopped
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func handle(ctx context.Context, log *zap.SugaredLogger, m *pubsub.Message, h Handler) {
	log.Infow("message received", "id", m.LoggableID, "body", string(m.Body))

	var e email.Event
	if err := json.Unmarshal(m.Body, &e); err != nil {
		// a body that does not parse never will
		log.Errorw("failed to parse body", "id", m.LoggableID, "ERROR", err)
		m.Ack()
		return
	}

	if err := h.Handle(ctx, e); err != nil {
		log.Errorw("job failed", "id", m.LoggableID, "type", e.Type, "ERROR", err)
		if m.Nackable() {
			m.Nack()
		}
		return
	}
	m.Ack()
}
