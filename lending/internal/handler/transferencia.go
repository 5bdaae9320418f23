package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

var estadosTransferencia = append(append([]model.EstadoTransferencia(nil), model.TransferenciaAbiertas...),
	model.TransferenciaRechazado, model.TransferenciaCancelado, model.TransferenciaFinalizado)

// CrearTransferencia godoc
// @Summary Create a transfer
// @Tags transferencias
// @Security Bearer
// @Accept json
// @Produce json
// @Param input body model.CreateTransferenciaRequest true "request body"
// @Success 201 {object} model.TransferenciaView
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /administrador/transferencia/crear [post]
// @Router /docente/transferencia/crear [post]
func (h *Handler) CrearTransferencia(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreateTransferenciaRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	t, err := h.svc.CrearTransferencia(c.Request().Context(), a, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// ObtenerTransferencia resolves a scanned QR. The token alone grants read access.
//
// @Summary Resolve a transfer QR
// @Description Answers 410 once the transfer is terminal or its QR expired.
// @Tags transferencias
// @Security Bearer
// @Produce json
// @Param codigoQR path string true "QR token"
// @Success 200 {object} model.TransferenciaView
// @Failure 401 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 410 {object} echo.HTTPError
// @Router /transferencia/{codigoQR} [get]
func (h *Handler) ObtenerTransferencia(c echo.Context) error {
	t, err := h.svc.ObtenerPorQR(c.Request().Context(), c.Param("codigoQR"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// ConfirmarOrigen godoc
// @Summary Origin confirms the transfer
// @Tags transferencias
// @Security Bearer
// @Accept json
// @Produce json
// @Param codigoQR path string true "QR token"
// @Param input body model.ConfirmarOrigenRequest true "request body"
// @Success 200 {object} model.TransferenciaView
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Failure 410 {object} echo.HTTPError
// @Router /docente/transferencia/{codigoQR}/confirmar [patch]
func (h *Handler) ConfirmarOrigen(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.ConfirmarOrigenRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	t, err := h.svc.ConfirmarOrigen(c.Request().Context(), a, c.Param("codigoQR"), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// ResponderDestino godoc
// @Summary Destination accepts or rejects
// @Tags transferencias
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path string true "Transferencia id or QR token"
// @Param input body model.ResponderDestinoRequest true "request body"
// @Success 200 {object} model.TransferenciaView
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Failure 410 {object} echo.HTTPError
// @Router /docente/transferencia/{id}/responder [patch]
func (h *Handler) ResponderDestino(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.ResponderDestinoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	t, err := h.svc.ResponderDestino(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// CancelarTransferencia godoc
// @Summary Cancel a transfer
// @Tags transferencias
// @Security Bearer
// @Accept json
// @Produce json
// @Param codigoQR path string true "QR token"
// @Param input body model.CancelarTransferenciaRequest true "request body"
// @Success 200 {object} model.TransferenciaView
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Failure 410 {object} echo.HTTPError
// @Router /transferencia/{codigoQR}/cancelar [patch]
func (h *Handler) CancelarTransferencia(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CancelarTransferenciaRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	t, err := h.svc.CancelarTransferencia(c.Request().Context(), a, c.Param("codigoQR"), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// ListTransferencias godoc
// @Summary List transfers
// @Tags transferencias
// @Security Bearer
// @Produce json
// @Param docente query string false "Origin or destination docente"
// @Param destino query string false "Destination docente"
// @Param prestamo query string false "Origin loan id"
// @Param estado query string false "Comma separated estados"
// @Success 200 {array} model.TransferenciaView
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /administrador/transferencias [get]
func (h *Handler) ListTransferencias(c echo.Context) error {
	f := model.TransferenciaFilter{
		Docente:        c.QueryParam("docente"),
		DocenteDestino: c.QueryParam("destino"),
		PrestamoOrigen: c.QueryParam("prestamo"),
	}
	for _, v := range queryList(c, "estado") {
		e := model.EstadoTransferencia(v)
		if !containsEstado(estadosTransferencia, e) {
			return echo.NewHTTPError(http.StatusBadRequest, "estado is invalid")
		}
		f.Estados = append(f.Estados, e)
	}
	list, err := h.svc.ListTransferencias(c.Request().Context(), f)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// ListTransferenciasDocente godoc
// @Summary List the caller's transfers
// @Tags transferencias
// @Security Bearer
// @Produce json
// @Param estado query string false "Filter by estado" Enums(pendiente_origen, confirmado_origen, rechazado, cancelado, finalizado)
// @Success 200 {array} model.TransferenciaView
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /docente/transferencias [get]
func (h *Handler) ListTransferenciasDocente(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	estado := model.EstadoTransferencia(c.QueryParam("estado"))
	if estado != "" && !containsEstado(estadosTransferencia, estado) {
		return echo.NewHTTPError(http.StatusBadRequest, "estado is invalid")
	}
	list, err := h.svc.ListTransferenciasDocente(c.Request().Context(), a, estado)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// ListTransferenciasPendientes godoc
// @Summary List transfers awaiting the caller
// @Tags transferencias
// @Security Bearer
// @Produce json
// @Success 200 {array} model.TransferenciaView
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /docente/transferencias/pendientes [get]
func (h *Handler) ListTransferenciasPendientes(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListTransferenciasPendientes(c.Request().Context(), a)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
