package audit

import (
	"context"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

const (
	eventosTableName = `eventos`
	defaultLimit     = 100
	maxLimit         = 1000
)

// Store is the append-only audit log of lending events.
type Store interface {
	Append(ctx context.Context, e model.Event) error
	List(ctx context.Context, f model.EventFilter) ([]model.Event, error)
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PostgresStore struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewPostgresStore(db *sqlx.DB, log *zap.Logger) *PostgresStore {
	return &PostgresStore{db: db, log: log.Named("audit")}
}

type eventoRow struct {
	ID         string    `db:"id"`
	Tipo       string    `db:"tipo"`
	Para       string    `db:"para"`
	EntidadID  string    `db:"entidad_id"`
	Payload    string    `db:"payload"`
	OcurridoEn time.Time `db:"ocurrido_en"`
}

// Append is idempotent on the event id so redelivered messages are harmless.
func (s *PostgresStore) Append(ctx context.Context, e model.Event) error {
	payload := string(e.Payload)
	if payload == "" {
		payload = "{}"
	}
	q, args, err := qb.Insert(eventosTableName).
		Columns("id", "tipo", "para", "entidad_id", "payload", "ocurrido_en").
		Values(e.ID, string(e.Tipo), e.Para, e.EntidadID, sq.Expr("?::jsonb", payload), e.OcurridoEn).
		Suffix("on conflict (id) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		s.log.Error("Append", zap.String("q", q), zap.String("id", e.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	b := qb.Select("id", "tipo", "para", "entidad_id", "payload::text as payload", "ocurrido_en").
		From(eventosTableName).
		OrderBy("ocurrido_en desc", "id desc").
		Limit(limitOf(f))
	if f.EntidadID != "" {
		b = b.Where(sq.Eq{"entidad_id": f.EntidadID})
	}
	if f.Para != "" {
		b = b.Where(sq.Eq{"para": f.Para})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var rows []eventoRow
	if err := s.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	out := make([]model.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Event{
			ID:         r.ID,
			Tipo:       model.EventType(r.Tipo),
			Para:       r.Para,
			EntidadID:  r.EntidadID,
			Payload:    []byte(r.Payload),
			OcurridoEn: r.OcurridoEn,
		})
	}
	return out, nil
}

func limitOf(f model.EventFilter) uint64 {
	switch {
	case f.Limit == 0:
		return defaultLimit
	case f.Limit > maxLimit:
		return maxLimit
	}
	return f.Limit
}

// MemoryStore backs the memory storage driver and tests.
type MemoryStore struct {
	mu     sync.Mutex
	events []model.Event
	ids    map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[string]struct{})}
}

func (s *MemoryStore) Append(_ context.Context, e model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[e.ID]; ok {
		return nil
	}
	s.ids[e.ID] = struct{}{}
	s.events = append(s.events, e)
	return nil
}

func (s *MemoryStore) List(_ context.Context, f model.EventFilter) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, 0)
	for i := len(s.events) - 1; i >= 0; i-- {
		e := s.events[i]
		if f.EntidadID != "" && e.EntidadID != f.EntidadID {
			continue
		}
		if f.Para != "" && e.Para != f.Para {
			continue
		}
		out = append(out, e)
		if uint64(len(out)) == limitOf(f) {
			break
		}
	}
	return out, nil
}
