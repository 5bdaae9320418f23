package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

// CreateRecurso godoc
// @Summary Create a resource
// @Tags recursos
// @Security Bearer
// @Accept json
// @Produce json
// @Param input body model.CreateRecursoRequest true "request body"
// @Success 201 {object} model.Recurso
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /administrador/recurso/crear [post]
func (h *Handler) CreateRecurso(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreateRecursoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	r, err := h.svc.CreateRecurso(c.Request().Context(), a, req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// GetRecurso godoc
// @Summary Get a resource
// @Tags recursos
// @Security Bearer
// @Produce json
// @Param id path string true "Recurso id"
// @Success 200 {object} model.Recurso
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /administrador/recurso/{id} [get]
func (h *Handler) GetRecurso(c echo.Context) error {
	r, err := h.svc.GetRecurso(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// ListRecursos godoc
// @Summary List resources
// @Tags recursos
// @Security Bearer
// @Produce json
// @Param tipo query string false "Filter by tipo" Enums(kit, llave, proyector)
// @Param estado query string false "Filter by estado" Enums(pendiente, activo, prestado)
// @Success 200 {array} model.Recurso
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /administrador/recursos [get]
func (h *Handler) ListRecursos(c echo.Context) error {
	var f model.RecursoFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if f.Tipo != "" && !f.Tipo.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "tipo is invalid")
	}
	list, err := h.svc.ListRecursos(c.Request().Context(), f)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// ListRecursosDisponibles godoc
// @Summary List available resources
// @Tags recursos
// @Security Bearer
// @Produce json
// @Success 200 {array} model.Recurso
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Router /docente/recursos/disponibles [get]
func (h *Handler) ListRecursosDisponibles(c echo.Context) error {
	list, err := h.svc.ListRecursosDisponibles(c.Request().Context())
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// UpdateRecurso godoc
// @Summary Edit a resource
// @Description Fails with 409 while the resource is held by an open loan.
// @Tags recursos
// @Security Bearer
// @Accept json
// @Produce json
// @Param id path string true "Recurso id"
// @Param input body model.UpdateRecursoRequest true "request body"
// @Success 200 {object} model.Recurso
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /administrador/recurso/{id} [put]
func (h *Handler) UpdateRecurso(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.UpdateRecursoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	r, err := h.svc.UpdateRecurso(c.Request().Context(), a, c.Param("id"), req)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// DeleteRecurso godoc
// @Summary Delete a resource
// @Tags recursos
// @Security Bearer
// @Produce json
// @Param id path string true "Recurso id"
// @Success 204
// @Failure 401 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /administrador/recurso/{id} [delete]
func (h *Handler) DeleteRecurso(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteRecurso(c.Request().Context(), a, c.Param("id")); err != nil {
		return h.httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
