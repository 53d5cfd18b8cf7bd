package review

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewHandler exposes the controller over HTTP so a web view can post
// bridge messages: POST /messages/{message}.
func NewHandler(c *Controller, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &handler{c: c, log: log}

	r := chi.NewRouter()
	r.Post("/messages/{message}", h.postMessage)
	return r
}

type handler struct {
	c   *Controller
	log *zap.Logger
}

func (h *handler) postMessage(w http.ResponseWriter, r *http.Request) {
	msg := chi.URLParam(r, "message")

	outcome, err := h.c.HandleCommand(msg)
	if err != nil {
		h.log.Error("grading failed", zap.String("message", msg), zap.Error(err))
		writeJSON(h.log, w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	if outcome == Ignored {
		h.log.Debug("bridge message ignored", zap.String("message", msg))
	}
	writeJSON(h.log, w, http.StatusOK, map[string]string{"status": string(outcome)})
}

func writeJSON(log *zap.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("writeJSON encode error", zap.Error(err))
	}
}
