package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
	"github.com/Astemirdum/lab-lending/lending/internal/repository"
	"github.com/Astemirdum/lab-lending/pkg/auth"
)

// Notifier relays lending events. Publishing is fire-and-forget: failures are the notifier's to log.
type Notifier interface {
	Publish(ctx context.Context, e model.Event)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
	// NewToken returns an unguessable QR capability token.
	NewToken() string
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type uuidGenerator struct{}

func (uuidGenerator) NewID() string    { return uuid.NewString() }
func (uuidGenerator) NewToken() string { return uuid.NewString() }

const (
	DefaultQRTTL       = 24 * time.Hour
	DefaultFrontendURL = "http://localhost:3000"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	notifier Notifier
	clock    Clock
	ids      IDGenerator

	qrTTL       time.Duration
	frontendURL string
}

type Option func(s *Service)

func WithClock(c Clock) Option { return func(s *Service) { s.clock = c } }

func WithIDGenerator(g IDGenerator) Option { return func(s *Service) { s.ids = g } }

// WithQRTTL sets how long a transfer QR stays usable, 0 disables expiry.
func WithQRTTL(ttl time.Duration) Option { return func(s *Service) { s.qrTTL = ttl } }

func WithFrontendURL(u string) Option {
	return func(s *Service) { s.frontendURL = strings.TrimRight(u, "/") }
}

func NewService(repo repository.Repository, notifier Notifier, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:         log.Named("service"),
		repo:        repo,
		notifier:    notifier,
		clock:       systemClock{},
		ids:         uuidGenerator{},
		qrTTL:       DefaultQRTTL,
		frontendURL: DefaultFrontendURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) now() time.Time {
	return s.clock.Now()
}

func (s *Service) publish(ctx context.Context, tipo model.EventType, para, entidadID string, data any) {
	if s.notifier == nil {
		return
	}
	e, err := model.NewEvent(tipo, para, entidadID, data)
	if err != nil {
		s.log.Error("encode event", zap.String("tipo", string(tipo)), zap.Error(err))
		return
	}
	s.notifier.Publish(ctx, e)
}

func requireAdmin(actor auth.Actor) error {
	if !actor.IsAdmin() {
		return errors.Wrap(errs.ErrPermission, "admin role required")
	}
	return nil
}

func required(v, field string) error {
	if strings.TrimSpace(v) == "" {
		return errors.Wrapf(errs.ErrValidation, "%s is required", field)
	}
	return nil
}
