package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	_ "github.com/Astemirdum/lab-lending/lending/swagger"
	"github.com/Astemirdum/lab-lending/pkg/auth"
	md "github.com/Astemirdum/lab-lending/pkg/middleware"
	"github.com/Astemirdum/lab-lending/pkg/validate"
)

type Handler struct {
	svc     LendingService
	eventos EventLog
	secret  []byte
	log     *zap.Logger
}

func New(svc LendingService, eventos EventLog, secret []byte, log *zap.Logger) *Handler {
	h := &Handler{
		svc:     svc,
		eventos: eventos,
		secret:  secret,
		log:     log.Named("handler"),
	}
	return h
}

//go:generate swag init -g handler.go -o ../../swagger --outputTypes go --parseDependency --parseInternal

// NewRouter builds the API.
//
// @title Lab lending API
// @version 1.0
// @description Lending of laboratory kits, keys and projectors with QR transfers between instructors.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication(h.secret),
	)

	api.GET("/prestamo/:id", h.GetPrestamo)
	api.GET("/transferencia/:codigoQR", h.ObtenerTransferencia)
	api.PATCH("/transferencia/:codigoQR/cancelar", h.CancelarTransferencia)

	admin := api.Group("/administrador", md.RequireRole(auth.RoleAdmin))
	admin.GET("/recursos", h.ListRecursos)
	admin.GET("/recurso/:id", h.GetRecurso)
	admin.POST("/recurso/crear", h.CreateRecurso)
	admin.PUT("/recurso/:id", h.UpdateRecurso)
	admin.DELETE("/recurso/:id", h.DeleteRecurso)

	admin.POST("/prestamo/crear", h.CrearPrestamo)
	admin.GET("/prestamos", h.ListPrestamos)
	admin.PATCH("/prestamo/:id/cancelar", h.CancelarPrestamo)
	admin.PATCH("/prestamo/:id/finalizar", h.FinalizarPrestamo)

	admin.POST("/transferencia/crear", h.CrearTransferencia)
	admin.GET("/transferencias", h.ListTransferencias)

	admin.GET("/eventos", h.ListEventos)

	docente := api.Group("/docente", md.RequireRole(auth.RoleDocente))
	docente.GET("/recursos/disponibles", h.ListRecursosDisponibles)

	docente.GET("/prestamos", h.ListPrestamosDocente)
	docente.GET("/prestamos/historial", h.HistorialDocente)
	docente.PATCH("/prestamo/:id/confirmar", h.ConfirmarPrestamo)
	docente.PATCH("/prestamo/:id/finalizar", h.FinalizarPrestamo)

	docente.POST("/transferencia/crear", h.CrearTransferencia)
	docente.PATCH("/transferencia/:codigoQR/confirmar", h.ConfirmarOrigen)
	docente.PATCH("/transferencia/:id/responder", h.ResponderDestino)
	docente.GET("/transferencias", h.ListTransferenciasDocente)
	docente.GET("/transferencias/pendientes", h.ListTransferenciasPendientes)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError renders a service error with the status of its kind.
func (h *Handler) httpError(c echo.Context, err error) error {
	code := errs.HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		h.log.Error("internal", zap.String("path", c.Path()), zap.Error(err))
	}
	return echo.NewHTTPError(code, err.Error())
}

func actor(c echo.Context) (auth.Actor, error) {
	a, err := auth.ActorFrom(c.Request().Context())
	if err != nil {
		return auth.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return a, nil
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// queryList accepts both repeated and comma separated values.
func queryList(c echo.Context, name string) []string {
	var out []string
	for _, v := range c.QueryParams()[name] {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

const dateLayout = "2006-01-02"

// queryTime parses RFC3339 or a plain date. A plain date used as an upper bound covers the whole day.
func queryTime(c echo.Context, name string, endOfDay bool) (*time.Time, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.Errorf("%s is invalid", name).Error())
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
