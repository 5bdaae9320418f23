package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/lab-lending/pkg/auth"
	"github.com/Astemirdum/lab-lending/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	secret := []byte("s3cret")
	admin, err := auth.NewToken(secret, auth.Actor{ID: "adm", Role: auth.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	docente, err := auth.NewToken(secret, auth.Actor{ID: "doc", Role: auth.RoleDocente}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{name: "no header", expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"No Authorization Header"}`},
		{name: "not bearer", header: "Basic x", expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"Invalid Authorization Header"}`},
		{name: "garbage", header: "Bearer x.y.z", expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"JwtAccessDenied"}`},
		{name: "wrong role", header: "Bearer " + docente, expectedCode: http.StatusForbidden, expectedBody: `{"message":"forbidden for role docente"}`},
		{name: "ok", header: "Bearer " + admin, expectedCode: http.StatusOK, expectedBody: "adm"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/x", func(c echo.Context) error {
				a, err := auth.ActorFrom(c.Request().Context())
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, a.ID)
			}, middleware.JwtAuthentication(secret), middleware.RequireRole(auth.RoleAdmin))

			r := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
			if tt.header != "" {
				r.Header.Set(middleware.AuthorizationHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
