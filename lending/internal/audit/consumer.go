package audit

import (
	"context"
	"sync"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

// Consumer is a sarama.ConsumerGroupHandler that appends every lending event to the store.
type Consumer struct {
	store      Store
	log        *zap.Logger
	ready      chan struct{}
	readyOnce  sync.Once
	attempts   int
	retryDelay time.Duration
}

func NewConsumer(store Store, log *zap.Logger) *Consumer {
	return &Consumer{
		store:      store,
		log:        log.Named("consumer"),
		ready:      make(chan struct{}),
		attempts:   3,
		retryDelay: 500 * time.Millisecond,
	}
}

// Ready is closed once the first session is set up.
func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	c.readyOnce.Do(func() { close(c.ready) })
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				c.log.Warn("message channel was closed")
				return nil
			}
			var e model.Event
			if err := jsoniter.Unmarshal(message.Value, &e); err != nil || e.ID == "" {
				c.log.Error("skip undecodable event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}
			if err := c.append(session.Context(), e); err != nil {
				// the offset stays uncommitted, the message comes back after the group rejoins
				c.log.Error("store.Append", zap.String("id", e.ID), zap.Int64("offset", message.Offset),
					zap.Int32("partition", message.Partition), zap.Error(err))
				return errors.Wrapf(err, "append event %s at offset %d", e.ID, message.Offset)
			}
			c.log.Debug("event stored", zap.String("id", e.ID), zap.String("tipo", string(e.Tipo)),
				zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// append retries with a linear backoff. Append is idempotent on the event id.
func (c *Consumer) append(ctx context.Context, e model.Event) error {
	var err error
	for i := 1; i <= c.attempts; i++ {
		if err = c.store.Append(ctx, e); err == nil {
			return nil
		}
		if i == c.attempts {
			break
		}
		select {
		case <-time.After(time.Duration(i) * c.retryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
