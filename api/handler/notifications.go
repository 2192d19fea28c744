package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/maxpoletaev/kivimon/api/model"
)

type NotificationsHandler struct {
	inbox Inbox
}

func NewNotificationsHandler(inbox Inbox) *NotificationsHandler {
	return &NotificationsHandler{inbox: inbox}
}

func (api *NotificationsHandler) Register(r chi.Router) {
	r.Get("/notifications", api.drain)
}

func (api *NotificationsHandler) drain(w http.ResponseWriter, r *http.Request) {
	pending := api.inbox.Drain()
	resp := make([]model.Notification, len(pending))

	for i, n := range pending {
		resp[i] = model.Notification{
			Title:   n.Title,
			Message: n.Message,
			Host:    n.Host,
			Time:    n.Time,
		}
	}

	render.JSON(w, r, model.GetNotificationsResponse{
		Notifications: resp,
	})
}
