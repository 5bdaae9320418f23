package errs_test

import (
	"net/http"
	"testing"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.Wrap(errs.ErrValidation, "nombre is required"), http.StatusBadRequest},
		{errs.ErrNotFound, http.StatusNotFound},
		{errors.Wrapf(errs.ErrResourceUnavailable, "recurso %s", "r1"), http.StatusConflict},
		{errs.ErrResourceLocked, http.StatusConflict},
		{errs.ErrIllegalTransition, http.StatusConflict},
		{errs.ErrConflict, http.StatusConflict},
		{errs.ErrExpired, http.StatusGone},
		{errs.ErrPermission, http.StatusForbidden},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, errs.HTTPStatus(tt.err), tt.err.Error())
	}
}
