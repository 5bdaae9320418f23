package errs

import (
	"errors"
	"net/http"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrResourceLocked      = errors.New("resource locked")
	ErrIllegalTransition   = errors.New("illegal state transition")
	ErrExpired             = errors.New("expired")
	ErrPermission          = errors.New("permission denied")
	ErrConflict            = errors.New("conflict")
)

var statuses = []struct {
	err    error
	status int
}{
	{ErrValidation, http.StatusBadRequest},
	{ErrNotFound, http.StatusNotFound},
	{ErrResourceUnavailable, http.StatusConflict},
	{ErrResourceLocked, http.StatusConflict},
	{ErrIllegalTransition, http.StatusConflict},
	{ErrConflict, http.StatusConflict},
	{ErrExpired, http.StatusGone},
	{ErrPermission, http.StatusForbidden},
}

// HTTPStatus maps an error kind to the response status, 500 for anything unclassified.
func HTTPStatus(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}
