package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

func TestMemoryStore_List(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	for i, e := range []model.Event{
		{ID: "1", Tipo: model.EventPrestamoAsignado, Para: "a", EntidadID: "p-1", OcurridoEn: base},
		{ID: "2", Tipo: model.EventTransferenciaConfirmadaOrigen, Para: "b", EntidadID: "t-1", OcurridoEn: base.Add(time.Minute)},
		{ID: "3", Tipo: model.EventTransferenciaRespondida, Para: "a", EntidadID: "t-1", OcurridoEn: base.Add(2 * time.Minute)},
		{ID: "3", Tipo: model.EventTransferenciaRespondida, Para: "a", EntidadID: "t-1", OcurridoEn: base.Add(2 * time.Minute)},
	} {
		require.NoError(t, s.Append(ctx, e), i)
	}

	tests := []struct {
		name string
		f    model.EventFilter
		want []string
	}{
		{name: "all newest first", want: []string{"3", "2", "1"}},
		{name: "by recipient", f: model.EventFilter{Para: "a"}, want: []string{"3", "1"}},
		{name: "by entity", f: model.EventFilter{EntidadID: "t-1"}, want: []string{"3", "2"}},
		{name: "limit", f: model.EventFilter{Limit: 1}, want: []string{"3"}},
		{name: "no match", f: model.EventFilter{Para: "z"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := s.List(ctx, tt.f)
			require.NoError(t, err)
			ids := make([]string, 0, len(list))
			for _, e := range list {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

// flakyStore fails its first n appends, then delegates.
type flakyStore struct {
	Store
	failures int
	calls    int
}

func (s *flakyStore) Append(ctx context.Context, e model.Event) error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("db down")
	}
	return s.Store.Append(ctx, e)
}

type fakeSession struct {
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32                        { return nil }
func (s *fakeSession) MemberID() string                                  { return "member" }
func (s *fakeSession) GenerationID() int32                               { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)           {}
func (s *fakeSession) Commit()                                           {}
func (s *fakeSession) ResetOffset(string, int32, int64, string)          {}
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) { s.marked = append(s.marked, msg.Offset) }
func (s *fakeSession) Context() context.Context                          { return s.ctx }

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return "lending-events" }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func claimOf(values ...string) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(values))
	for i, v := range values {
		ch <- &sarama.ConsumerMessage{Topic: "lending-events", Offset: int64(i), Value: []byte(v)}
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

func Test_limitOf(t *testing.T) {
	tests := []struct {
		limit uint64
		want  uint64
	}{
		{limit: 0, want: defaultLimit},
		{limit: 1, want: 1},
		{limit: maxLimit, want: maxLimit},
		{limit: maxLimit + 1, want: maxLimit},
		{limit: 50000, want: maxLimit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, limitOf(model.EventFilter{Limit: tt.limit}), "limit %d", tt.limit)
	}
}

func TestConsumer_ConsumeClaim(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := NewConsumer(store, zap.NewNop())

	session := &fakeSession{ctx: ctx}
	require.NoError(t, c.Setup(session))
	require.NoError(t, c.Setup(session))
	select {
	case <-c.Ready():
	default:
		t.Fatal("consumer not ready after setup")
	}

	claim := claimOf(
		`{"id":"01HV","tipo":"prestamo-asignado","para":"b","entidadId":"p-1","payload":{"recurso":"KIT #1"},"ocurridoEn":"2024-04-10T09:00:00Z"}`,
		`not json`,
		`{"tipo":"prestamo-asignado"}`,
	)
	require.NoError(t, c.ConsumeClaim(session, claim))

	assert.Equal(t, []int64{0, 1, 2}, session.marked)
	list, err := store.List(ctx, model.EventFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "01HV", list[0].ID)
	assert.Equal(t, "p-1", list[0].EntidadID)
	assert.JSONEq(t, `{"recurso":"KIT #1"}`, string(list[0].Payload))
}

func TestConsumer_StoreFailure(t *testing.T) {
	tests := []struct {
		name       string
		failures   int
		wantErr    bool
		wantMarked []int64
		wantStored int
	}{
		{
			name:       "recovers within retries",
			failures:   2,
			wantMarked: []int64{0, 1},
			wantStored: 2,
		},
		{
			name:     "ends session without committing",
			failures: 100,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemoryStore()
			c := NewConsumer(&flakyStore{Store: mem, failures: tt.failures}, zap.NewNop())
			c.retryDelay = time.Millisecond
			session := &fakeSession{ctx: context.Background()}

			err := c.ConsumeClaim(session, claimOf(
				`{"id":"x","tipo":"prestamo-asignado"}`,
				`{"id":"y","tipo":"prestamo-asignado"}`,
			))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "offset 0")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantMarked, session.marked)

			stored, err := mem.List(context.Background(), model.EventFilter{})
			require.NoError(t, err)
			assert.Len(t, stored, tt.wantStored)
		})
	}
}

func TestConsumer_StopsOnSessionDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewConsumer(NewMemoryStore(), zap.NewNop())
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}

	require.NoError(t, c.ConsumeClaim(&fakeSession{ctx: ctx}, claim))
}
