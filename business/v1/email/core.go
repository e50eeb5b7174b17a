// Package email enqueues email notification jobs and runs them.
package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/ribgsilva/note-service/business/v1/errs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

type Core struct {
	log   *zap.SugaredLogger
	topic *pubsub.Topic
	delay time.Duration
}

// NewCore builds a Core. topic may be nil for processes that only run jobs.
func NewCore(log *zap.SugaredLogger, topic *pubsub.Topic, sendDelay time.Duration) *Core {
	return &Core{log: log, topic: topic, delay: sendDelay}
}

// Enqueue publishes a send job for address and returns without waiting for it to run
func (c *Core) Enqueue(ctx context.Context, address string) (Job, error) {
	if _, err := mail.ParseAddress(address); err != nil {
		return Job{}, fmt.Errorf("%w: invalid email address", errs.ErrValidation)
	}

	id := uuid.NewString()
	data, err := json.Marshal(SendEmail{JobId: id, Address: address})
	if err != nil {
		return Job{}, fmt.Errorf("marshal job: %w", err)
	}
	body, err := json.Marshal(Event{Type: TypeSend, Data: data})
	if err != nil {
		return Job{}, fmt.Errorf("marshal event: %w", err)
	}

	if err := c.topic.Send(ctx, &pubsub.Message{
		Body:     body,
		Metadata: map[string]string{"job_id": id, "type": TypeSend},
	}); err != nil {
		c.log.Errorw("enqueue", "job", id, "ERROR", err)
		return Job{}, fmt.Errorf("%w: %v", errs.ErrUnavailable, err)
	}

	c.log.Infow("enqueue", "job", id, "type", TypeSend)
	return Job{Message: "Email task submitted", TaskId: id}, nil
}

// Handle runs the job carried by e. Unknown types are not retried.
func (c *Core) Handle(ctx context.Context, e Event) error {
	switch e.Type {
	case TypeSend:
		var se SendEmail
		if err := json.Unmarshal(e.Data, &se); err != nil {
			c.log.Errorw("handle", "type", e.Type, "ERROR", err)
			return nil
		}
		return c.Send(ctx, se)
	default:
		c.log.Errorw("handle", "ERROR", "unknown event type", "type", e.Type)
		return nil
	}
}

// Send delivers one email. There is no mail transport, the delivery is simulated.
func (c *Core) Send(ctx context.Context, se SendEmail) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.delay):
	}
	c.log.Infow("email sent", "job", se.JobId, "address", se.Address)
	return nil
}
