package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/model"
	"github.com/Astemirdum/lab-lending/lending/internal/repository/memory"
	"github.com/Astemirdum/lab-lending/lending/internal/service"
	"github.com/Astemirdum/lab-lending/pkg/auth"
)

var (
	admin = auth.Actor{ID: "admin-1", Role: auth.RoleAdmin}
	docA  = auth.Actor{ID: "docente-a", Role: auth.RoleDocente}
	docB  = auth.Actor{ID: "docente-b", Role: auth.RoleDocente}
	docC  = auth.Actor{ID: "docente-c", Role: auth.RoleDocente}
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type recorder struct {
	mu     sync.Mutex
	events []model.Event
}

func (r *recorder) Publish(_ context.Context, e model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) byTipo(tipo model.EventType) []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Event
	for _, e := range r.events {
		if e.Tipo == tipo {
			out = append(out, e)
		}
	}
	return out
}

type env struct {
	svc   *service.Service
	repo  *memory.Repository
	clock *fakeClock
	rec   *recorder
}

func setup(t *testing.T, opts ...service.Option) env {
	t.Helper()
	e := env{
		repo:  memory.New(),
		clock: &fakeClock{t: time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)},
		rec:   &recorder{},
	}
	opts = append([]service.Option{
		service.WithClock(e.clock),
		service.WithFrontendURL("https://lab.example.com/"),
	}, opts...)
	e.svc = service.NewService(e.repo, e.rec, zap.NewNop(), opts...)
	return e
}

func (e env) kit(t *testing.T, lab string) model.Recurso {
	t.Helper()
	r, err := e.svc.CreateRecurso(context.Background(), admin, model.CreateRecursoRequest{
		Tipo:        model.TipoKit,
		Nombre:      "Kit " + lab,
		Laboratorio: lab,
		Aula:        "A-" + lab,
		Contenido:   []string{"protoboard", "multimetro"},
	})
	require.NoError(t, err)
	return r
}

func (e env) proyector(t *testing.T) model.Recurso {
	t.Helper()
	r, err := e.svc.CreateRecurso(context.Background(), admin, model.CreateRecursoRequest{
		Tipo:      model.TipoProyector,
		Nombre:    "Epson",
		Contenido: []string{"cable HDMI"},
	})
	require.NoError(t, err)
	return r
}

func (e env) prestar(t *testing.T, docente auth.Actor, recurso string, adicionales ...string) model.Prestamo {
	t.Helper()
	p, err := e.svc.CrearPrestamo(context.Background(), admin, model.CreatePrestamoRequest{
		Docente:             docente.ID,
		Recurso:             recurso,
		RecursosAdicionales: adicionales,
		Motivo:              model.Motivo{Tipo: model.MotivoClase},
	})
	require.NoError(t, err)
	return p
}

func (e env) activar(t *testing.T, docente auth.Actor, recurso string, adicionales ...string) model.Prestamo {
	t.Helper()
	p := e.prestar(t, docente, recurso, adicionales...)
	p, err := e.svc.ConfirmarPrestamo(context.Background(), docente, p.ID, model.ConfirmarPrestamoRequest{
		Confirmar: true,
		Firma:     docente.ID + "-firma",
	})
	require.NoError(t, err)
	require.Equal(t, model.PrestamoActivo, p.Estado)
	return p
}

func (e env) estado(t *testing.T, recursoID string) model.EstadoRecurso {
	t.Helper()
	r, err := e.svc.GetRecurso(context.Background(), recursoID)
	require.NoError(t, err)
	return r.Estado
}

// openLoans counts loans in pendiente/activo that reference recursoID.
func (e env) openLoans(t *testing.T, recursoID string) int {
	t.Helper()
	items, err := e.svc.ListPrestamos(context.Background(), model.PrestamoFilter{Estados: model.PrestamoAbiertos})
	require.NoError(t, err)
	n := 0
	for _, p := range items {
		if p.Holds(recursoID) {
			n++
		}
	}
	return n
}
