package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/twmb/murmur3"

	"github.com/maxpoletaev/kivimon/api/model"
	"github.com/maxpoletaev/kivimon/nodestatus"
	"github.com/maxpoletaev/kivimon/view"
)

var errBadIndex = errors.New("bad node index")

type NodesHandler struct {
	board Board
}

func NewNodesHandler(board Board) *NodesHandler {
	return &NodesHandler{
		board: board,
	}
}

func (api *NodesHandler) Register(r chi.Router) {
	r.Get("/nodes", api.getNodes)
	r.Post("/nodes/{index}/power", api.power)
	r.Put("/nodes/{index}/switches/{kind}", api.setSwitch)
	r.Get("/nodes/{index}/log", api.getLog)
	r.Get("/nodes/{index}/diagnostic/{word}", api.diagnostic)
	r.Get("/nodes/{index}/window", api.window)
}

func toModel(snap view.Snapshot) model.GetNodesResponse {
	nodes := make([]model.Node, len(snap.Nodes))

	for i, n := range snap.Nodes {
		switches := make([]model.Switch, len(n.Switches))
		for j, sw := range n.Switches {
			switches[j] = model.Switch{
				Kind:    string(sw.Kind),
				Visible: sw.Visible,
				Enabled: sw.Enabled,
				Checked: sw.Checked,
			}
		}

		nodes[i] = model.Node{
			Index:    n.Index,
			ID:       n.ID,
			Host:     n.Host,
			Tag:      n.Tag,
			Local:    n.Local,
			Reported: n.Reported,
			Failed:   n.Failed,
			State:    n.State.String(),
			Running:  n.Running,
			Status:   n.StatusMessage,
			Color:    string(n.Color),
			Power: model.Power{
				Action:  n.Power.Action.String(),
				Label:   n.Power.Label,
				Enabled: n.Power.Enabled,
			},
			Diagnostic: model.Control(n.Diagnostic),
			Log:        model.Control(n.Log),
			Window:     model.Control(n.Window),
			Switches:   switches,
		}
	}

	return model.GetNodesResponse{
		Generation: uint64(snap.Generation),
		Nodes:      nodes,
	}
}

func (api *NodesHandler) getNodes(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(toModel(api.board.Snapshot()))
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, murmur3.Sum64(body))
	w.Header().Set("ETag", etag)

	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (api *NodesHandler) control(r *http.Request) (*view.Controls, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadIndex, err)
	}

	return api.board.Control(index)
}

func (api *NodesHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBadIndex) {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	renderError(w, r, statusFor(err), err)
}

func (api *NodesHandler) power(w http.ResponseWriter, r *http.Request) {
	c, err := api.control(r)
	if err != nil {
		api.fail(w, r, err)
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"

	var asked model.ConfirmationResponse

	confirm := view.ConfirmFunc(func(_ context.Context, _, prompt string) bool {
		asked.Prompt = prompt
		return confirmed
	})

	err = c.Power(r.Context(), confirm)

	switch {
	case errors.Is(err, view.ErrNotConfirmed):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, asked)
	case err != nil:
		api.fail(w, r, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (api *NodesHandler) setSwitch(w http.ResponseWriter, r *http.Request) {
	c, err := api.control(r)
	if err != nil {
		api.fail(w, r, err)
		return
	}

	kind, err := nodestatus.ParseSwitchKind(chi.URLParam(r, "kind"))
	if err != nil {
		api.fail(w, r, err)
		return
	}

	var params model.SetSwitchParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	if err := c.SetSwitch(r.Context(), kind, params.Enabled); err != nil {
		api.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api *NodesHandler) getLog(w http.ResponseWriter, r *http.Request) {
	c, err := api.control(r)
	if err != nil {
		api.fail(w, r, err)
		return
	}

	text, err := c.Log(r.Context())
	if err != nil {
		api.fail(w, r, err)
		return
	}

	render.JSON(w, r, model.TextResponse{Text: text})
}

func (api *NodesHandler) diagnostic(w http.ResponseWriter, r *http.Request) {
	c, err := api.control(r)
	if err != nil {
		api.fail(w, r, err)
		return
	}

	text, err := c.Diagnostic(r.Context(), chi.URLParam(r, "word"))
	if err != nil {
		api.fail(w, r, err)
		return
	}

	render.JSON(w, r, model.TextResponse{Text: text})
}

// requestURL reconstructs the address the dashboard was opened with. The
// Referer is preferred since it points at the page rather than the API.
func requestURL(r *http.Request) *url.URL {
	if ref := r.Header.Get("Referer"); ref != "" {
		if u, err := url.Parse(ref); err == nil && u.Host != "" {
			return u
		}
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return &url.URL{Scheme: scheme, Host: r.Host, Path: "/"}
}

func (api *NodesHandler) window(w http.ResponseWriter, r *http.Request) {
	c, err := api.control(r)
	if err != nil {
		api.fail(w, r, err)
		return
	}

	target, err := c.WindowURL(requestURL(r))
	if err != nil {
		api.fail(w, r, err)
		return
	}

	render.JSON(w, r, model.WindowResponse{URL: target})
}
