package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

// ListEventos godoc
// @Summary List audit events
// @Description Newest first.
// @Tags eventos
// @Security Bearer
// @Produce json
// @Param entidad query string false "Entity id"
// @Param para query string false "Recipient docente"
// @Param limit query integer false "Page size, capped at 1000"
// @Success 200 {array} model.Event
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /administrador/eventos [get]
func (h *Handler) ListEventos(c echo.Context) error {
	f := model.EventFilter{
		EntidadID: c.QueryParam("entidad"),
		Para:      c.QueryParam("para"),
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err := strconv.ParseUint(limitParam, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
		}
		f.Limit = limit
	}
	list, err := h.eventos.List(c.Request().Context(), f)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
