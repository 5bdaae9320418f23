package notify

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/audit"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
	"github.com/Astemirdum/lab-lending/pkg/circuit_breaker"
)

const (
	breakerRecordLength = 20
	breakerTimeout      = 30 * time.Second
	breakerPercentile   = 0.5
	breakerRecovery     = 3
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// stamp assigns the relay id and timestamp. Ids are ULIDs so they sort by time.
func stamp(e model.Event, now time.Time) model.Event {
	if e.ID == "" {
		e.ID = ulid.Make().String()
	}
	if e.OcurridoEn.IsZero() {
		e.OcurridoEn = now.UTC()
	}
	return e
}

// Kafka publishes events to the lending topic keyed by recipient.
// Delivery is best effort: failures are logged and never reach the caller.
type Kafka struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	now      func() time.Time
	log      *zap.Logger
}

type Option func(k *Kafka)

func WithBreaker(cb circuit_breaker.CircuitBreaker) Option {
	return func(k *Kafka) {
		k.cb = cb
	}
}

func WithClock(now func() time.Time) Option {
	return func(k *Kafka) {
		k.now = now
	}
}

func NewKafka(producer sarama.SyncProducer, topic string, log *zap.Logger, opts ...Option) *Kafka {
	k := &Kafka{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(breakerRecordLength, breakerTimeout, breakerPercentile, breakerRecovery),
		now:      time.Now,
		log:      log.Named("notify"),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *Kafka) Publish(_ context.Context, e model.Event) {
	e = stamp(e, k.now())
	data, err := json.Marshal(e)
	if err != nil {
		k.log.Error("encode event", zap.String("tipo", string(e.Tipo)), zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(e.Para),
		Value: sarama.ByteEncoder(data),
	}
	if err := k.cb.Call(func() error {
		_, _, err := k.producer.SendMessage(msg)
		return err
	}); err != nil {
		k.log.Error("publish event",
			zap.String("id", e.ID),
			zap.String("tipo", string(e.Tipo)),
			zap.String("para", e.Para),
			zap.Stringer("breaker", k.cb.State()),
			zap.Error(err))
		return
	}
	k.log.Debug("event published", zap.String("id", e.ID), zap.String("tipo", string(e.Tipo)))
}

// Direct writes events straight to the audit store, used when no broker is configured.
type Direct struct {
	store audit.Store
	now   func() time.Time
	log   *zap.Logger
}

func NewDirect(store audit.Store, log *zap.Logger) *Direct {
	return &Direct{store: store, now: time.Now, log: log.Named("notify")}
}

func (d *Direct) Publish(ctx context.Context, e model.Event) {
	e = stamp(e, d.now())
	if err := d.store.Append(ctx, e); err != nil {
		d.log.Error("store event", zap.String("id", e.ID), zap.String("tipo", string(e.Tipo)), zap.Error(err))
	}
}
