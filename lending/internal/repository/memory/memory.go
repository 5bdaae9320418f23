package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
	"github.com/Astemirdum/lab-lending/lending/internal/repository"
	"github.com/pkg/errors"
)

// Repository keeps everything in process memory. A single mutex makes every
// method one atomic step, which is what the postgres transactions give.
type Repository struct {
	mu sync.Mutex

	recursos       map[string]model.Recurso
	recursoOrden   []string
	secuencias     map[model.TipoRecurso]int
	holds          map[string]string // recurso id -> open prestamo id
	prestamos      map[string]model.Prestamo
	transferencias map[string]model.Transferencia
	qr             map[string]string // codigoQR -> transferencia id
}

var _ repository.Repository = (*Repository)(nil)

func New() *Repository {
	return &Repository{
		recursos:       make(map[string]model.Recurso),
		secuencias:     make(map[model.TipoRecurso]int),
		holds:          make(map[string]string),
		prestamos:      make(map[string]model.Prestamo),
		transferencias: make(map[string]model.Transferencia),
		qr:             make(map[string]string),
	}
}

func (m *Repository) CreateRecurso(_ context.Context, r model.Recurso) (model.Recurso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.recursos[r.ID]; ok {
		return model.Recurso{}, errors.Wrapf(errs.ErrConflict, "recurso %s exists", r.ID)
	}
	if err := m.checkLaboratorio(r); err != nil {
		return model.Recurso{}, err
	}
	m.secuencias[r.Tipo]++
	r.Codigo = r.Tipo.Codigo(m.secuencias[r.Tipo])
	r.Estado = model.RecursoPendiente
	r.Contenido = clone(r.Contenido)
	m.recursos[r.ID] = r
	m.recursoOrden = append(m.recursoOrden, r.ID)
	return r, nil
}

func (m *Repository) checkLaboratorio(r model.Recurso) error {
	if r.Laboratorio == "" {
		return nil
	}
	for id, other := range m.recursos {
		if id != r.ID && other.Tipo == r.Tipo && other.Laboratorio == r.Laboratorio {
			return errors.Wrapf(errs.ErrConflict, "laboratorio %s already has a %s", r.Laboratorio, r.Tipo)
		}
	}
	return nil
}

func (m *Repository) GetRecurso(_ context.Context, id string) (model.Recurso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.recursos[id]
	if !ok {
		return model.Recurso{}, errors.Wrapf(errs.ErrNotFound, "recurso %s", id)
	}
	return copyRecurso(r), nil
}

func (m *Repository) ListRecursos(_ context.Context, f model.RecursoFilter) ([]model.Recurso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Recurso, 0)
	for _, id := range m.recursoOrden {
		r, ok := m.recursos[id]
		if !ok {
			continue
		}
		if f.Tipo != "" && r.Tipo != f.Tipo {
			continue
		}
		if f.Estado != "" && r.Estado != f.Estado {
			continue
		}
		out = append(out, copyRecurso(r))
	}
	return out, nil
}

func (m *Repository) FindRecursosByCodigo(_ context.Context, codigos []string) ([]model.Recurso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := make(map[string]struct{}, len(codigos))
	for _, c := range codigos {
		want[c] = struct{}{}
	}
	out := make([]model.Recurso, 0, len(codigos))
	for _, id := range m.recursoOrden {
		r, ok := m.recursos[id]
		if !ok {
			continue
		}
		if _, ok := want[r.Codigo]; ok {
			out = append(out, copyRecurso(r))
		}
	}
	return out, nil
}

func (m *Repository) UpdateRecurso(_ context.Context, r model.Recurso) (model.Recurso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.recursos[r.ID]
	if !ok {
		return model.Recurso{}, errors.Wrapf(errs.ErrNotFound, "recurso %s", r.ID)
	}
	if cur.Locked() {
		return model.Recurso{}, errors.Wrapf(errs.ErrResourceLocked, "recurso %s is %s", r.ID, cur.Estado)
	}
	r.Tipo = cur.Tipo
	if err := m.checkLaboratorio(r); err != nil {
		return model.Recurso{}, err
	}
	cur.Nombre = r.Nombre
	cur.Laboratorio = r.Laboratorio
	cur.Aula = r.Aula
	cur.Contenido = clone(r.Contenido)
	m.recursos[r.ID] = cur
	return copyRecurso(cur), nil
}

func (m *Repository) DeleteRecurso(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.recursos[id]
	if !ok {
		return nil
	}
	if cur.Locked() {
		return errors.Wrapf(errs.ErrResourceLocked, "recurso %s is %s", id, cur.Estado)
	}
	delete(m.recursos, id)
	for i, rid := range m.recursoOrden {
		if rid == id {
			m.recursoOrden = append(m.recursoOrden[:i], m.recursoOrden[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Repository) CreatePrestamo(_ context.Context, p model.Prestamo) (model.Prestamo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.prestamos[p.ID]; ok {
		return model.Prestamo{}, errors.Wrapf(errs.ErrConflict, "prestamo %s exists", p.ID)
	}
	if err := m.checkFree(p.Recursos()); err != nil {
		return model.Prestamo{}, err
	}
	p = copyPrestamo(p)
	m.hold(p)
	m.prestamos[p.ID] = p
	return copyPrestamo(p), nil
}

func (m *Repository) checkFree(ids []string) error {
	for _, id := range ids {
		r, ok := m.recursos[id]
		if !ok {
			return errors.Wrapf(errs.ErrNotFound, "recurso %s", id)
		}
		if holder, held := m.holds[id]; held {
			return errors.Wrapf(errs.ErrResourceUnavailable, "recurso %s is held by prestamo %s", r.Codigo, holder)
		}
		if r.Estado != model.RecursoPendiente {
			return errors.Wrapf(errs.ErrResourceUnavailable, "recurso %s is %s", r.Codigo, r.Estado)
		}
	}
	return nil
}

func (m *Repository) hold(p model.Prestamo) {
	estado := p.Estado.RecursoEstado()
	for _, id := range p.Recursos() {
		m.holds[id] = p.ID
		m.setRecursoEstado(id, estado)
	}
}

func (m *Repository) release(p model.Prestamo) {
	for _, id := range p.Recursos() {
		if m.holds[id] == p.ID {
			delete(m.holds, id)
			m.setRecursoEstado(id, model.RecursoPendiente)
		}
	}
}

func (m *Repository) setRecursoEstado(id string, e model.EstadoRecurso) {
	if r, ok := m.recursos[id]; ok {
		r.Estado = e
		m.recursos[id] = r
	}
}

func (m *Repository) GetPrestamo(_ context.Context, id string) (model.Prestamo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prestamos[id]
	if !ok {
		return model.Prestamo{}, errors.Wrapf(errs.ErrNotFound, "prestamo %s", id)
	}
	return copyPrestamo(p), nil
}

func (m *Repository) ListPrestamos(_ context.Context, f model.PrestamoFilter) ([]model.Prestamo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Prestamo, 0)
	for _, p := range m.prestamos {
		if f.Docente != "" && p.Docente != f.Docente {
			continue
		}
		if len(f.Estados) > 0 && !containsEstado(f.Estados, p.Estado) {
			continue
		}
		if f.Desde != nil && p.FechaPrestamo.Before(*f.Desde) {
			continue
		}
		if f.Hasta != nil && p.FechaPrestamo.After(*f.Hasta) {
			continue
		}
		out = append(out, copyPrestamo(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FechaPrestamo.Equal(out[j].FechaPrestamo) {
			return out[i].ID < out[j].ID
		}
		return out[i].FechaPrestamo.After(out[j].FechaPrestamo)
	})
	return out, nil
}

func (m *Repository) TransitionPrestamo(_ context.Context, t model.PrestamoTransition) (model.Prestamo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prestamos[t.ID]
	if !ok {
		return model.Prestamo{}, errors.Wrapf(errs.ErrNotFound, "prestamo %s", t.ID)
	}
	if p.Estado != t.From {
		return model.Prestamo{}, errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s is %s, expected %s", p.ID, p.Estado, t.From)
	}
	if t.To == model.PrestamoFinalizado {
		if tr, open := m.openTransferencia(p.ID, t.At); open {
			return model.Prestamo{}, errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s has open transferencia %s", p.ID, tr.ID)
		}
	}
	p = t.Apply(p)
	if p.Estado.Terminal() {
		m.release(p)
	} else {
		m.hold(p)
	}
	m.prestamos[p.ID] = p
	return copyPrestamo(p), nil
}

func (m *Repository) CreateTransferencia(_ context.Context, t model.Transferencia) (model.Transferencia, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.prestamos[t.PrestamoOrigen]
	if !ok {
		return model.Transferencia{}, errors.Wrapf(errs.ErrNotFound, "prestamo %s", t.PrestamoOrigen)
	}
	if p.Estado != model.PrestamoActivo {
		return model.Transferencia{}, errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s is %s", p.ID, p.Estado)
	}
	if open, ok := m.openTransferencia(p.ID, t.FechaSolicitud); ok {
		return model.Transferencia{}, errors.Wrapf(errs.ErrConflict, "prestamo %s already has transferencia %s", p.ID, open.ID)
	}
	if _, ok := m.qr[t.CodigoQR]; ok {
		return model.Transferencia{}, errors.Wrap(errs.ErrConflict, "codigoQR collision")
	}
	if _, ok := m.transferencias[t.ID]; ok {
		return model.Transferencia{}, errors.Wrapf(errs.ErrConflict, "transferencia %s exists", t.ID)
	}
	t = copyTransferencia(t)
	m.transferencias[t.ID] = t
	m.qr[t.CodigoQR] = t.ID
	return copyTransferencia(t), nil
}

func (m *Repository) openTransferencia(prestamoID string, now time.Time) (model.Transferencia, bool) {
	for _, tr := range m.transferencias {
		if tr.PrestamoOrigen == prestamoID && !tr.Caducada(now) {
			return tr, true
		}
	}
	return model.Transferencia{}, false
}

func (m *Repository) GetTransferencia(_ context.Context, id string) (model.Transferencia, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.transferencias[id]
	if !ok {
		return model.Transferencia{}, errors.Wrapf(errs.ErrNotFound, "transferencia %s", id)
	}
	return copyTransferencia(t), nil
}

func (m *Repository) GetTransferenciaByQR(_ context.Context, codigoQR string) (model.Transferencia, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.qr[codigoQR]
	if !ok {
		return model.Transferencia{}, errors.Wrap(errs.ErrNotFound, "transferencia")
	}
	return copyTransferencia(m.transferencias[id]), nil
}

func (m *Repository) ListTransferencias(_ context.Context, f model.TransferenciaFilter) ([]model.Transferencia, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Transferencia, 0)
	for _, t := range m.transferencias {
		if f.Docente != "" && t.DocenteOrigen != f.Docente && t.DocenteDestino != f.Docente {
			continue
		}
		if f.DocenteDestino != "" && t.DocenteDestino != f.DocenteDestino {
			continue
		}
		if f.PrestamoOrigen != "" && t.PrestamoOrigen != f.PrestamoOrigen {
			continue
		}
		if len(f.Estados) > 0 && !containsEstado(f.Estados, t.Estado) {
			continue
		}
		out = append(out, copyTransferencia(t))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FechaSolicitud.Equal(out[j].FechaSolicitud) {
			return out[i].ID < out[j].ID
		}
		return out[i].FechaSolicitud.After(out[j].FechaSolicitud)
	})
	return out, nil
}

func (m *Repository) TransitionTransferencia(_ context.Context, t model.TransferenciaTransition) (model.Transferencia, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tr, err := m.checkTransferencia(t)
	if err != nil {
		return model.Transferencia{}, err
	}
	tr = t.Apply(tr)
	m.transferencias[tr.ID] = tr
	return copyTransferencia(tr), nil
}

func (m *Repository) checkTransferencia(t model.TransferenciaTransition) (model.Transferencia, error) {
	tr, ok := m.transferencias[t.ID]
	if !ok {
		return model.Transferencia{}, errors.Wrapf(errs.ErrNotFound, "transferencia %s", t.ID)
	}
	if !t.Allowed(tr.Estado) {
		return model.Transferencia{}, errors.Wrapf(errs.ErrIllegalTransition, "transferencia %s is %s", tr.ID, tr.Estado)
	}
	if tr.Expired(t.At) {
		return model.Transferencia{}, errors.Wrapf(errs.ErrExpired, "transferencia %s", tr.ID)
	}
	return tr, nil
}

func (m *Repository) AcceptTransferencia(_ context.Context, a model.TransferAcceptance) (model.Transferencia, model.Prestamo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tr, err := m.checkTransferencia(a.Transition)
	if err != nil {
		return model.Transferencia{}, model.Prestamo{}, err
	}
	origen, ok := m.prestamos[tr.PrestamoOrigen]
	if !ok {
		return model.Transferencia{}, model.Prestamo{}, errors.Wrapf(errs.ErrNotFound, "prestamo %s", tr.PrestamoOrigen)
	}
	if origen.Estado != model.PrestamoActivo {
		return model.Transferencia{}, model.Prestamo{}, errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s is %s", origen.ID, origen.Estado)
	}
	for _, id := range a.Nuevo.Recursos() {
		if !origen.Holds(id) {
			return model.Transferencia{}, model.Prestamo{}, errors.Wrapf(errs.ErrValidation, "recurso %s is not part of prestamo %s", id, origen.ID)
		}
	}

	origen = model.PrestamoTransition{
		ID:            origen.ID,
		From:          model.PrestamoActivo,
		To:            model.PrestamoFinalizado,
		At:            a.Transition.At,
		FinalizadoPor: model.FinalizadoPorTransferencia,
	}.Apply(origen)
	m.release(origen)
	m.prestamos[origen.ID] = origen

	nuevo := copyPrestamo(a.Nuevo)
	m.hold(nuevo)
	m.prestamos[nuevo.ID] = nuevo

	tr = a.Transition.Apply(tr)
	tr.PrestamoDestino = nuevo.ID
	m.transferencias[tr.ID] = tr
	return copyTransferencia(tr), copyPrestamo(nuevo), nil
}

func containsEstado[T comparable](in []T, v T) bool {
	for _, e := range in {
		if e == v {
			return true
		}
	}
	return false
}

func clone(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

func copyRecurso(r model.Recurso) model.Recurso {
	r.Contenido = clone(r.Contenido)
	return r
}

func copyPrestamo(p model.Prestamo) model.Prestamo {
	p.RecursosAdicionales = clone(p.RecursosAdicionales)
	return p
}

func copyTransferencia(t model.Transferencia) model.Transferencia {
	t.Recursos = clone(t.Recursos)
	t.RecursosAdicionales = clone(t.RecursosAdicionales)
	return t
}
