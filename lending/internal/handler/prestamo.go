package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

// CrearPrestamo godoc
// @Summary Create a loan
// @Tags prestamos
// @Security Bearer
// @Accept json
// @Produce json
// @Param input body model.CreatePrestamoRequest true "request body"
// @Success 201 {object} model.Prestamo
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /administrador/prestamo/crear [post]
func (h *Handler) CrearPrestamo(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreatePrestamoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.svc.CrearPrestamo(c.Request().Context(), a, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// ConfirmarPrestamo godoc
// @Summary Accept or reject a pending loan
// @Tags prestamos
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path string true "Prestamo id"
// @Param input body model.ConfirmarPrestamoRequest true "request body"
// @Success 200 {object} model.Prestamo
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /docente/prestamo/{id}/confirmar [patch]
func (h *Handler) ConfirmarPrestamo(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.ConfirmarPrestamoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.svc.ConfirmarPrestamo(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// FinalizarPrestamo serves both the admin and the borrower route; the service records who closed it.
//
// @Summary Finalize an active loan
// @Tags prestamos
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path string true "Prestamo id"
// @Param input body model.FinalizarPrestamoRequest true "request body"
// @Success 200 {object} model.Prestamo
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /administrador/prestamo/{id}/finalizar [patch]
// @Router /docente/prestamo/{id}/finalizar [patch]
func (h *Handler) FinalizarPrestamo(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.FinalizarPrestamoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.svc.FinalizarPrestamo(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// CancelarPrestamo godoc
// @Summary Cancel a pending loan
// @Tags prestamos
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path string true "Prestamo id"
// @Param input body model.CancelarPrestamoRequest true "request body"
// @Success 200 {object} model.Prestamo
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /administrador/prestamo/{id}/cancelar [patch]
func (h *Handler) CancelarPrestamo(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CancelarPrestamoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.svc.CancelarPrestamo(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// GetPrestamo godoc
// @Summary Get a loan
// @Tags prestamos
// @Security Bearer
// @Produce json
// @Param id path string true "Prestamo id"
// @Success 200 {object} model.Prestamo
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /prestamo/{id} [get]
func (h *Handler) GetPrestamo(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	p, err := h.svc.GetPrestamo(c.Request().Context(), a, c.Param("id"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

var estadosPrestamo = append(append([]model.EstadoPrestamo(nil), model.PrestamoAbiertos...), model.PrestamoCerrados...)

// ListPrestamos godoc
// @Summary List loans
// @Tags prestamos
// @Security Bearer
// @Produce json
// @Param docente query string false "Borrower id"
// @Param estado query string false "Comma separated estados"
// @Param desde query string false "From date, RFC3339 or 2006-01-02"
// @Param hasta query string false "To date, inclusive"
// @Success 200 {array} model.Prestamo
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /administrador/prestamos [get]
func (h *Handler) ListPrestamos(c echo.Context) error {
	f := model.PrestamoFilter{Docente: c.QueryParam("docente")}
	for _, v := range queryList(c, "estado") {
		e := model.EstadoPrestamo(v)
		if !containsEstado(estadosPrestamo, e) {
			return echo.NewHTTPError(http.StatusBadRequest, "estado is invalid")
		}
		f.Estados = append(f.Estados, e)
	}
	var err error
	if f.Desde, err = queryTime(c, "desde", false); err != nil {
		return err
	}
	if f.Hasta, err = queryTime(c, "hasta", true); err != nil {
		return err
	}
	list, err := h.svc.ListPrestamos(c.Request().Context(), f)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// ListPrestamosDocente godoc
// @Summary List the caller's open loans
// @Tags prestamos
// @Security Bearer
// @Produce json
// @Success 200 {array} model.Prestamo
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /docente/prestamos [get]
func (h *Handler) ListPrestamosDocente(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListPrestamosDocente(c.Request().Context(), a)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// HistorialDocente godoc
// @Summary List the caller's closed loans
// @Tags prestamos
// @Security Bearer
// @Produce json
// @Success 200 {array} model.Prestamo
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /docente/prestamos/historial [get]
func (h *Handler) HistorialDocente(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.svc.HistorialDocente(c.Request().Context(), a)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func containsEstado[T comparable](list []T, v T) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
