package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/maxpoletaev/kivimon/api/model"
	"github.com/maxpoletaev/kivimon/nodestatus"
	"github.com/maxpoletaev/kivimon/view"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, view.ErrNoSuchNode), errors.Is(err, view.ErrReleased):
		return http.StatusNotFound
	case errors.Is(err, view.ErrDisabled), errors.Is(err, view.ErrLocalNode), errors.Is(err, view.ErrNotConfirmed):
		return http.StatusConflict
	case errors.Is(err, nodestatus.ErrUnknownSwitch), errors.Is(err, nodestatus.ErrBadDiagnostic):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, model.ErrorResponse{Error: err.Error()})
}
