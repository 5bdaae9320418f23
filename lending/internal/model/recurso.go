package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/pkg/errors"
)

type TipoRecurso string

const (
	TipoKit       TipoRecurso = "kit"
	TipoLlave     TipoRecurso = "llave"
	TipoProyector TipoRecurso = "proyector"
)

func (t TipoRecurso) Valid() bool {
	switch t {
	case TipoKit, TipoLlave, TipoProyector:
		return true
	}
	return false
}

// Codigo renders the display label for the n-th resource of this tipo, e.g. "KIT #3".
func (t TipoRecurso) Codigo(n int) string {
	return fmt.Sprintf("%s #%d", strings.ToUpper(string(t)), n)
}

type EstadoRecurso string

const (
	RecursoPendiente EstadoRecurso = "pendiente"
	RecursoActivo    EstadoRecurso = "activo"
	RecursoPrestado  EstadoRecurso = "prestado"
)

type Recurso struct {
	ID          string        `json:"id" db:"id"`
	Codigo      string        `json:"codigo" db:"codigo"`
	Tipo        TipoRecurso   `json:"tipo" db:"tipo"`
	Nombre      string        `json:"nombre" db:"nombre"`
	Laboratorio string        `json:"laboratorio,omitempty" db:"laboratorio"`
	Aula        string        `json:"aula,omitempty" db:"aula"`
	Contenido   []string      `json:"contenido,omitempty" db:"contenido"`
	Estado      EstadoRecurso `json:"estado" db:"estado"`
	CreadoEn    time.Time     `json:"creadoEn" db:"creado_en"`
}

// Locked reports whether an open loan holds the resource.
func (r Recurso) Locked() bool {
	return r.Estado == RecursoActivo || r.Estado == RecursoPrestado
}

// Validate checks the per-tipo field rules.
func (r Recurso) Validate() error {
	if !r.Tipo.Valid() {
		return errors.Wrapf(errs.ErrValidation, "unknown tipo %q", r.Tipo)
	}
	if strings.TrimSpace(r.Nombre) == "" {
		return errors.Wrap(errs.ErrValidation, "nombre is required")
	}
	switch r.Tipo {
	case TipoKit, TipoLlave:
		if r.Laboratorio == "" || r.Aula == "" {
			return errors.Wrapf(errs.ErrValidation, "%s requires laboratorio and aula", r.Tipo)
		}
	}
	switch r.Tipo {
	case TipoKit, TipoProyector:
		if len(r.Contenido) == 0 {
			return errors.Wrapf(errs.ErrValidation, "%s requires contenido", r.Tipo)
		}
	case TipoLlave:
		if len(r.Contenido) != 0 {
			return errors.Wrap(errs.ErrValidation, "llave must not have contenido")
		}
	}
	return nil
}

type CreateRecursoRequest struct {
	Tipo        TipoRecurso `json:"tipo" validate:"required,oneof=kit llave proyector"`
	Nombre      string      `json:"nombre" validate:"required"`
	Laboratorio string      `json:"laboratorio"`
	Aula        string      `json:"aula"`
	Contenido   []string    `json:"contenido"`
}

// UpdateRecursoRequest carries a partial edit; nil fields are left unchanged.
type UpdateRecursoRequest struct {
	Nombre      *string  `json:"nombre"`
	Laboratorio *string  `json:"laboratorio"`
	Aula        *string  `json:"aula"`
	Contenido   []string `json:"contenido"`
}

// Merge applies the edit on top of r.
func (u UpdateRecursoRequest) Merge(r Recurso) Recurso {
	if u.Nombre != nil {
		r.Nombre = strings.TrimSpace(*u.Nombre)
	}
	if u.Laboratorio != nil {
		r.Laboratorio = strings.TrimSpace(*u.Laboratorio)
	}
	if u.Aula != nil {
		r.Aula = strings.TrimSpace(*u.Aula)
	}
	if u.Contenido != nil {
		r.Contenido = TrimList(u.Contenido)
	}
	return r
}

type RecursoFilter struct {
	Tipo   TipoRecurso   `query:"tipo"`
	Estado EstadoRecurso `query:"estado"`
}

// CleanList trims entries and drops blanks and duplicates, keeping order.
func CleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// TrimList trims entries and drops blanks.
func TrimList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
